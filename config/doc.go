// Package config loads xmlfmt settings from configuration files and the
// environment.
//
// Settings are layered: built in defaults, then the nearest .xmlfmt.yaml,
// .xmlfmt.yml or .xmlfmt.toml found from the working directory upwards,
// then XMLFMT_* environment variables. Command line flags are applied last
// by the caller.
//
// A configuration file looks like
//
//	indent: 4
//	maxLineLength: 100
//	entityMode: hex
//	extensions: [.xml, .xsd, .svg]
package config
