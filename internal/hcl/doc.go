// Package hcl provides the concrete HCL implementation of the configuration
// Loader interface defined in the `config` package. It is responsible for
// file parsing, HCL-to-model translation and binding stage maps from CTY
// values to Go.
//
// A configuration file holds any number of pipeline blocks:
//
//	pipeline "core_2d" {
//	  sub_graph = "core_2d"
//	  stages    = { bloom = false }
//
//	  stage "tonemapping" {
//	    enabled = true
//	  }
//	}
package hcl
