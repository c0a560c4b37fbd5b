//go:build !cgo

package hal

type touchState struct{}
