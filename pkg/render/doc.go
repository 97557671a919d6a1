// Package render materializes DOT descriptions as images and opens them.
//
// # Overview
//
// Everything here sits outside the traversal core. The core hands over a
// DOT file; this package turns it into an image and optionally shows it.
//
//   - [Runner] is the injectable command-runner capability. [ExecRunner]
//     shells out with os/exec; tests substitute a fake.
//   - [Renderer] turns a DOT file into an image file. [CommandRenderer]
//     invokes an external dot binary through a Runner; [GraphvizRenderer]
//     renders in-process via [nodelink.Render].
//   - [Viewer] opens a file with the platform's default viewer.
//   - [WriteFile] writes a file all-or-nothing.
//
// # Usage
//
//	r := render.CommandRenderer{Runner: render.ExecRunner{}}
//	if err := r.Render(ctx, "list.dot", "png", "list.png"); err != nil {
//	    logger.Warn("render failed", "err", err)
//	}
//	_ = render.NewViewer(render.ExecRunner{}).Open(ctx, "list.png")
//
// [nodelink.Render]: github.com/matzehuels/linkviz/pkg/render/nodelink.Render
package render
