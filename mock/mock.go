// Package mock is used to generate mock files for testing.
package mock

//go:generate mockgen -source ../camdram_iface.go -destination mock_camdram/mock_camdram_iface.go
