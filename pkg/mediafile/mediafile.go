// Package mediafile classifies media files by name: extension classes,
// clutter detection, derived-file relationships, and content-type
// grouping for the matcher dispatch.
package mediafile

import (
	"path/filepath"
	"strings"
)

// Class is the broad extension class of a file.
type Class int

const (
	ClassOther Class = iota
	ClassVideo
	ClassSubtitle
	ClassAudio
	ClassSidecar // nfo, thumbnails, artwork
	ClassFolder
)

func (c Class) String() string {
	switch c {
	case ClassVideo:
		return "video"
	case ClassSubtitle:
		return "subtitle"
	case ClassAudio:
		return "audio"
	case ClassSidecar:
		return "sidecar"
	case ClassFolder:
		return "folder"
	default:
		return "other"
	}
}

var videoExts = map[string]bool{
	".mkv": true, ".mp4": true, ".avi": true, ".m4v": true, ".mov": true,
	".wmv": true, ".mpg": true, ".mpeg": true, ".ts": true, ".webm": true,
	".divx": true, ".ogm": true,
}

var subtitleExts = map[string]bool{
	".srt": true, ".sub": true, ".ass": true, ".ssa": true, ".vtt": true,
	".idx": true, ".smi": true,
}

var audioExts = map[string]bool{
	".mp3": true, ".flac": true, ".m4a": true, ".ogg": true, ".opus": true,
	".wav": true, ".wma": true, ".aac": true, ".ape": true,
}

var sidecarExts = map[string]bool{
	".nfo": true, ".jpg": true, ".jpeg": true, ".png": true, ".tbn": true,
	".xml": true, ".txt": true,
}

// ClassOf classifies a path by its extension. A path without any
// extension is treated as a folder; the scanning layer is out of scope,
// so classification is purely name-based.
func ClassOf(path string) Class {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == "":
		return ClassFolder
	case videoExts[ext]:
		return ClassVideo
	case subtitleExts[ext]:
		return ClassSubtitle
	case audioExts[ext]:
		return ClassAudio
	case sidecarExts[ext]:
		return ClassSidecar
	default:
		return ClassOther
	}
}

// IsVideo reports whether the path has a video extension.
func IsVideo(path string) bool { return ClassOf(path) == ClassVideo }

// IsSubtitle reports whether the path has a subtitle extension.
func IsSubtitle(path string) bool { return ClassOf(path) == ClassSubtitle }

// IsAudio reports whether the path has an audio extension.
func IsAudio(path string) bool { return ClassOf(path) == ClassAudio }

// IsNFO reports whether the path is an .nfo sidecar.
func IsNFO(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".nfo")
}

var clutterMarkers = []string{"sample", "trailer", "extras", "behind.the.scenes", "deleted.scenes"}

// IsClutter reports whether a file looks like a sample, trailer, or
// other non-primary extra that should be skipped under autodetection.
func IsClutter(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	for _, marker := range clutterMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

// IsDerived reports whether derived is a sidecar of primary: same
// parent folder and the derived base name starts with the primary base
// name (modulo case and separator noise).
func IsDerived(derived, primary string) bool {
	if filepath.Dir(derived) != filepath.Dir(primary) {
		return false
	}
	d := normalizeBase(derived)
	p := normalizeBase(primary)
	if d == "" || p == "" {
		return false
	}
	return strings.HasPrefix(d, p) || strings.HasPrefix(p, d)
}

func normalizeBase(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	// Subtitles often carry a language tag: Show.S01E02.en.srt
	if ext := filepath.Ext(base); len(ext) == 3 || len(ext) == 4 {
		base = strings.TrimSuffix(base, ext)
	}
	base = strings.ToLower(base)
	replacer := strings.NewReplacer(".", " ", "_", " ", "-", " ")
	return strings.Join(strings.Fields(replacer.Replace(base)), " ")
}

// GroupByFolder partitions paths by their parent directory, preserving
// first-seen folder order.
func GroupByFolder(paths []string) map[string][]string {
	groups := make(map[string][]string)
	for _, p := range paths {
		dir := filepath.Dir(p)
		groups[dir] = append(groups[dir], p)
	}
	return groups
}
