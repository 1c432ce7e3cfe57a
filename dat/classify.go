package dat

import "strings"

// Classification is the resolved location of one file: the chain of
// category names above its game, the game that owns it, and the name the
// record is stored under.
type Classification struct {
	Categories []string
	Group      string
	Record     string
}

// Classifier maps relative path components to catalog locations.
//
// GameDepth counts directory components from the source root; the component
// at that depth becomes the game, everything above it becomes categories,
// and anything deeper collapses into the rom name. Files without a folder at
// the boundary ("loose files") are wrapped according to LooseFiles.
type Classifier struct {
	GameDepth    int
	LooseFiles   LoosePolicy
	StripExt     bool
	DefaultGroup string
}

// NewClassifier derives a Classifier from resolved options.
func NewClassifier(o Options) Classifier {
	return Classifier{
		GameDepth:    o.GameDepth,
		LooseFiles:   o.LooseFiles,
		StripExt:     o.StripExt,
		DefaultGroup: o.defaultGroup(),
	}
}

// Classify resolves the slash-split components of a path relative to the
// source root. parts must contain at least the file name itself.
func (c Classifier) Classify(parts []string) Classification {
	file := parts[len(parts)-1]
	dirs := parts[:len(parts)-1]

	// Depth 0 is one implicit game for the whole run; the rom keeps its
	// full relative path.
	if c.GameDepth == 0 {
		return Classification{
			Group:  c.DefaultGroup,
			Record: strings.Join(parts, "/"),
		}
	}

	// The file sits strictly below the boundary: the folder at GameDepth
	// is the game, folders above it are categories, and deeper folders
	// fold into the rom name.
	if len(dirs) > c.GameDepth {
		return Classification{
			Categories: dirs[:c.GameDepth],
			Group:      dirs[c.GameDepth],
			Record:     strings.Join(parts[c.GameDepth+1:], "/"),
		}
	}

	// Loose file: no folder at the boundary to serve as the game.
	if c.LooseFiles == LooseParent && len(dirs) > 0 {
		return Classification{
			Categories: dirs[:len(dirs)-1],
			Group:      dirs[len(dirs)-1],
			Record:     file,
		}
	}

	group := file
	if c.LooseFiles == LooseStrip && c.StripExt {
		group = stripExtension(file)
	}
	return Classification{
		Categories: dirs,
		Group:      group,
		Record:     file,
	}
}

// stripExtension removes the final extension from a file name. Dotfiles
// keep their name: ".config" has no extension to strip.
func stripExtension(name string) string {
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[:i]
	}
	return name
}
