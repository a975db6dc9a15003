// Package format holds the layout policy shared by the layout and encode
// packages.
//
// # Usage
//
//	cfg := format.DefaultConfig()
//	cfg.MaxLineLength = 80
//	cfg.EntityMode = format.HexEntities
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	out := encode.Render(doc, cfg)
//
// # Related Packages
//
//   - github.com/signadot/xmlfmt/layout - per element layout decisions
//   - github.com/signadot/xmlfmt/encode - renders documents with a Config
package format
