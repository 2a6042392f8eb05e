// Package inflect converts identifiers between naming conventions.
//
// The three case kinds understood by destination patterns and template
// helpers are:
//
//	underscore      UserProfile → user_profile
//	upperCamelCase  user_profile → UserProfile
//	lowerCamelCase  user_profile → userProfile
//
// Conversion is idempotent: converting an already converted value returns it
// unchanged.
//
//	inflect.Convert("user_profile", inflect.Underscore) // "user_profile"
//	inflect.Convert("blog_post", inflect.UpperCamelCase) // "BlogPost"
package inflect
