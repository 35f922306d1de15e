// Package schema loads declarative rule documents written in YAML or JSON and compiles
// them into a validator.Set.
//
// A document is a list of rule definitions:
//
//	rules:
//	  - rule: presence
//	    path: email
//	  - rule: format
//	    path: email
//	    preset: email
//	  - rule: numericality
//	    path: [profile, age]
//	    only_integer: true
//	    gte: 18
//	  - rule: inclusion
//	    path: role
//	    in: [admin, user]
//	  - rule: length
//	    path: [address, zip]
//	    is: 5
//
// Parsing only decodes bytes; reading files is left to the caller. Unknown fields, unknown
// rule names and rule configuration errors are all reported, with the index of the
// offending definition, instead of producing a set that accepts everything.
//
// Supported presets for format rules: email, uuid, url, phone, ip, alphanumeric, alpha,
// numeric, slug, hex, base64, semver, domain.
package schema
