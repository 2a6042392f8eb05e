// Package plugin loads quill plugins and applies them to types.
//
// A plugin is a directory holding a plugin.yml manifest next to the files
// it produces:
//
//	apiVersion: quill/v1
//	kind: Plugin
//	name: model
//	spec:
//	  options:
//	    author: Jane
//	  files:
//	    - src: model.go.tmpl
//	      dest: underscore:internal/**/*.go
//	      each: type
//	    - src: README.md
//	      dest: README.md
//	      overwrite: false
//	  trees:
//	    - dir: skeleton
//	      dest: ""
//	  after:
//	    - gofmt -w .
//
// Run feeds every rule through a generator.Generator: "type" rules once per
// type with the type as context, "once" rules a single time with RunData.
package plugin
