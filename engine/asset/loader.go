package asset

import (
	"fmt"
	"io/fs"
)

// MaxPathLen bounds prefix+name, matching the device's fixed path buffer
// (which also holds a terminating NUL).
const MaxPathLen = 128

const (
	DefaultTexturePrefix = "usr/textures/"
	DefaultFontPrefix    = "usr/fonts/"
)

// LoaderConfig configures where a Loader looks for assets.
type LoaderConfig struct {
	TexturePrefix string
	FontPrefix    string
}

// Stats tracks what a Loader currently has outstanding.
type Stats struct {
	BytesUsed      int
	TexturesLoaded int
	FontsLoaded    int
}

// Loader reads textures and fonts from a filesystem and accounts for them.
//
// A Loader is not safe for concurrent use; it belongs to one game loop.
type Loader struct {
	fsys          fs.FS
	texturePrefix string
	fontPrefix    string
	stats         Stats
}

// NewLoader returns a loader reading from fsys. A nil fsys finds nothing.
func NewLoader(fsys fs.FS, cfg LoaderConfig) *Loader {
	if cfg.TexturePrefix == "" {
		cfg.TexturePrefix = DefaultTexturePrefix
	}
	if cfg.FontPrefix == "" {
		cfg.FontPrefix = DefaultFontPrefix
	}
	return &Loader{fsys: fsys, texturePrefix: cfg.TexturePrefix, fontPrefix: cfg.FontPrefix}
}

// Stats returns a snapshot of the loader's counters.
func (l *Loader) Stats() Stats { return l.stats }

// ResolveTexturePath joins the texture prefix and name.
func (l *Loader) ResolveTexturePath(name string) (string, error) {
	return resolvePath(l.texturePrefix, name)
}

// ResolveFontPath joins the font prefix and name.
func (l *Loader) ResolveFontPath(name string) (string, error) {
	return resolvePath(l.fontPrefix, name)
}

func resolvePath(prefix, name string) (string, error) {
	p := prefix + name
	if len(p) >= MaxPathLen {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrPathTooLong, len(p), MaxPathLen-1)
	}
	return p, nil
}

func (l *Loader) read(path string) ([]byte, error) {
	if l.fsys == nil {
		return nil, fmt.Errorf("%w: %s: no filesystem", ErrNotFound, path)
	}
	b, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return b, nil
}

// LoadTexture reads name from the texture directory.
//
// On failure it returns a nil texture and leaves the counters untouched.
func (l *Loader) LoadTexture(name string) (*Texture, error) {
	path, err := l.ResolveTexturePath(name)
	if err != nil {
		return nil, err
	}
	b, err := l.read(path)
	if err != nil {
		return nil, err
	}
	t, err := DecodeTexture(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t.owner = l
	l.stats.BytesUsed += t.Size()
	l.stats.TexturesLoaded++
	return t, nil
}

// LoadFont reads name from the font directory.
//
// On failure it returns a nil font and leaves the counters untouched.
func (l *Loader) LoadFont(name string) (*Font, error) {
	path, err := l.ResolveFontPath(name)
	if err != nil {
		return nil, err
	}
	b, err := l.read(path)
	if err != nil {
		return nil, err
	}
	f, err := DecodeFont(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.owner = l
	l.stats.BytesUsed += f.Size()
	l.stats.FontsLoaded++
	return f, nil
}

// FreeTexture returns t's bytes to the loader and empties it.
// Textures this loader did not load, and textures already freed, are left alone.
func (l *Loader) FreeTexture(t *Texture) {
	if t == nil || t.owner != l || t.released {
		return
	}
	l.stats.BytesUsed -= t.Size()
	l.stats.TexturesLoaded--
	t.Width, t.Height, t.Pix = 0, 0, nil
	t.released = true
}

// FreeFont returns f's bytes to the loader and empties it.
// Fonts this loader did not load, and fonts already freed, are left alone.
func (l *Loader) FreeFont(f *Font) {
	if f == nil || f.owner != l || f.released {
		return
	}
	l.stats.BytesUsed -= f.Size()
	l.stats.FontsLoaded--
	f.Width, f.Height, f.Bits = 0, 0, nil
	f.released = true
}
