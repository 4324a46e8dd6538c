package fsys

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Category is a coarse classification tag derived from a file's extension.
type Category string

const (
	CategoryDirectory  Category = "directory"
	CategoryDocument   Category = "document"
	CategoryImage      Category = "image"
	CategoryAudio      Category = "audio"
	CategoryVideo      Category = "video"
	CategoryArchive    Category = "archive"
	CategoryExecutable Category = "executable"
	CategorySource     Category = "source" // source code and config formats
	CategoryLog        Category = "log"    // logs, temp files, backups
	CategoryOther      Category = "other"
)

var categoryByExt = map[string]Category{
	".txt": CategoryDocument, ".md": CategoryDocument, ".doc": CategoryDocument,
	".docx": CategoryDocument, ".pdf": CategoryDocument, ".odt": CategoryDocument,
	".rtf": CategoryDocument, ".xls": CategoryDocument, ".xlsx": CategoryDocument,
	".ppt": CategoryDocument, ".pptx": CategoryDocument, ".csv": CategoryDocument,

	".jpg": CategoryImage, ".jpeg": CategoryImage, ".png": CategoryImage,
	".gif": CategoryImage, ".bmp": CategoryImage, ".svg": CategoryImage,
	".ico": CategoryImage, ".webp": CategoryImage,

	".mp3": CategoryAudio, ".wav": CategoryAudio, ".flac": CategoryAudio,
	".aac": CategoryAudio, ".ogg": CategoryAudio, ".wma": CategoryAudio,

	".mp4": CategoryVideo, ".avi": CategoryVideo, ".mkv": CategoryVideo,
	".mov": CategoryVideo, ".wmv": CategoryVideo, ".flv": CategoryVideo,
	".webm": CategoryVideo,

	".zip": CategoryArchive, ".rar": CategoryArchive, ".7z": CategoryArchive,
	".tar": CategoryArchive, ".gz": CategoryArchive, ".iso": CategoryArchive,

	".exe": CategoryExecutable, ".msi": CategoryExecutable, ".bat": CategoryExecutable,
	".cmd": CategoryExecutable, ".ps1": CategoryExecutable, ".vbs": CategoryExecutable,
	".dll": CategoryExecutable, ".sys": CategoryExecutable,

	".py": CategorySource, ".js": CategorySource, ".html": CategorySource,
	".css": CategorySource, ".json": CategorySource, ".xml": CategorySource,
	".java": CategorySource, ".c": CategorySource, ".cpp": CategorySource,
	".cs": CategorySource, ".php": CategorySource, ".go": CategorySource,
	".rb": CategorySource, ".swift": CategorySource, ".toml": CategorySource,
	".yaml": CategorySource, ".yml": CategorySource,

	".log": CategoryLog, ".tmp": CategoryLog, ".bak": CategoryLog,
}

// Descriptor is a point-in-time snapshot of one filesystem entry. It can go
// stale; consumers must re-validate existence before acting on it.
type Descriptor struct {
	Name          string    `json:"name"`
	Path          string    `json:"path"`
	IsDir         bool      `json:"is_dir"`
	Size          int64     `json:"size"`
	FormattedSize string    `json:"formatted_size,omitempty"`
	Modified      time.Time `json:"modified"`
	Category      Category  `json:"category"`
}

// Resolve stats path and builds its descriptor. Returns nil when the path
// does not exist or cannot be statted.
func Resolve(path string) *Descriptor {
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	d := FromInfo(path, info)
	return &d
}

// FromInfo builds a descriptor from an already-obtained stat result, avoiding
// a second stat during tree walks.
func FromInfo(path string, info os.FileInfo) Descriptor {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	d := Descriptor{
		Name:     filepath.Base(abs),
		Path:     abs,
		IsDir:    info.IsDir(),
		Modified: info.ModTime(),
	}
	if d.IsDir {
		d.Category = CategoryDirectory
	} else {
		d.Size = info.Size()
		d.FormattedSize = FormatSize(d.Size)
		d.Category = CategoryOf(abs)
	}
	return d
}

// CategoryOf classifies a file path by extension.
func CategoryOf(path string) Category {
	ext := strings.ToLower(filepath.Ext(path))
	if c, ok := categoryByExt[ext]; ok {
		return c
	}
	return CategoryOther
}

// FormatSize renders a byte count using binary units. Values below 1 KB are
// shown as integer bytes; larger values scale to the biggest unit where the
// result is at least 1, with two decimal places.
func FormatSize(size int64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
		gb = 1 << 30
		tb = 1 << 40
	)
	switch {
	case size < kb:
		return fmt.Sprintf("%d B", size)
	case size < mb:
		return fmt.Sprintf("%.2f KB", float64(size)/kb)
	case size < gb:
		return fmt.Sprintf("%.2f MB", float64(size)/mb)
	case size < tb:
		return fmt.Sprintf("%.2f GB", float64(size)/gb)
	default:
		return fmt.Sprintf("%.2f TB", float64(size)/tb)
	}
}
