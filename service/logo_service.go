package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/disintegration/imaging"
)

// defaultLogoMaxWidth keeps the embedded logo small enough for a header row
const defaultLogoMaxWidth = 400

// FileLogoSource reads the logo from local disk
type FileLogoSource struct {
	Path string
}

// Ensure FileLogoSource implements LogoSource
var _ LogoSource = (*FileLogoSource)(nil)

func (s *FileLogoSource) Name() string {
	return "file:" + s.Path
}

func (s *FileLogoSource) Fetch(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read logo: %w", err)
	}
	return data, nil
}

// LogoService loads the company logo once and hands out its base64 form
type LogoService struct {
	source   LogoSource
	maxWidth int

	mu   sync.RWMutex
	logo string
}

// Ensure LogoService implements LogoProvider
var _ LogoProvider = (*LogoService)(nil)

// NewLogoService creates a new LogoService
func NewLogoService(source LogoSource, maxWidth int) *LogoService {
	if maxWidth <= 0 {
		maxWidth = defaultLogoMaxWidth
	}
	return &LogoService{
		source:   source,
		maxWidth: maxWidth,
	}
}

// Load fetches the logo, shrinks it to maxWidth and caches it as base64 PNG
func (s *LogoService) Load(ctx context.Context) error {
	raw, err := s.source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch logo from %s: %w", s.source.Name(), err)
	}

	optimized, err := OptimizeLogo(raw, s.maxWidth)
	if err != nil {
		return fmt.Errorf("failed to optimize logo from %s: %w", s.source.Name(), err)
	}

	s.mu.Lock()
	s.logo = base64.StdEncoding.EncodeToString(optimized)
	s.mu.Unlock()

	log.Printf("✓ Logo loaded from %s (%d bytes raw, %d bytes optimized)", s.source.Name(), len(raw), len(optimized))
	return nil
}

// DefaultLogo returns the cached logo, or "" when Load has not succeeded
func (s *LogoService) DefaultLogo() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.logo
}

// OptimizeLogo decodes an image, downsizes it to maxWidth keeping the aspect ratio
// and re-encodes it as PNG so transparency survives
func OptimizeLogo(imageData []byte, maxWidth int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if img.Bounds().Dx() > maxWidth {
		log.Printf("🔄 Resizing logo: width %d -> %d", img.Bounds().Dx(), maxWidth)
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode to PNG: %w", err)
	}
	return buf.Bytes(), nil
}
