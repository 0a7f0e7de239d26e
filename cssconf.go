// Package cssconf builds the stylesheet scaffolding for a server-rendered
// web application: design tokens, conditional variants, forms styling and
// inlined SVG icon utilities.
//
// # Building
//
// Merge the brand theme into the base tokens, run the plugins and write
// the stylesheet:
//
//	config := cssconf.Config{
//		Content: []string{"./js/**/*.js", "../lib/app_web/**/*.*ex"},
//		Output:  "css/app.gen.css",
//		Extend: cssconf.Theme{
//			"colors": {"brand": "#E8692C"},
//		},
//		Plugins: []cssconf.PluginSpec{
//			{Name: "forms"},
//			{Name: "phx-click-loading"},
//			{Name: "heroicons", Options: cssconf.PluginOptions{"root": "../deps/heroicons/optimized"}},
//		},
//	}
//	result, err := cssconf.Build(config)
//
// A build is all-or-nothing: a missing icon directory or an unreadable
// icon aborts it before any file is written.
//
// # CLI Tool
//
// cssconf also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/cssconf/cmd/cssconf@latest
package cssconf
