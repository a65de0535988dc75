// Package registry provides the central "glue" for the plugin system.
//
// The Registry stores the plugins that contribute to the render graph, in the
// order they were registered. During the build phase each plugin is handed the
// graph mutation API and the loaded configuration, and mutates the graph.
// Registration order is also build order; a plugin that splices into another
// plugin's sub-graph must be registered after it.
package registry
