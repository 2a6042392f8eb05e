// Package schema parses the YAML documents quill reads.
//
// Every document shares the same envelope:
//
//	apiVersion: quill/v1
//	kind: Plugin        # or Types
//	name: rails-model
//	metadata:
//	  # free-form
//	spec:
//	  # kind-specific
//
// Parse reads the envelope and keeps spec undecoded; callers decode it into
// their own structure with Decode once they have checked the kind.
package schema
