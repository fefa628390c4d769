package service

import "context"

// LogoSource fetches the raw bytes of the company logo
type LogoSource interface {
	Name() string
	Fetch(ctx context.Context) ([]byte, error)
}

// LogoProvider supplies the base64 logo used when a quote does not carry one
type LogoProvider interface {
	DefaultLogo() string
}
