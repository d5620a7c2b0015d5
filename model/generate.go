package model

//go:generate go run ../internal/cmd/generate --definitions ../internal/cmd/generate/definitions/management.json --package management --out gen/management
//go:generate go run ../internal/cmd/generate --definitions ../internal/cmd/generate/definitions/dataplane.json --package dataplane --out gen/dataplane
