// Command singletons runs the singleton catalogue pages.
//
// Each page is a short script that prints what it demonstrates:
//
//   - implementation:          lazy singleton, and why a struct cannot be one
//   - another-implementation:  shared instance next to custom instances
//   - protocol:                singletons exposed only through capability interfaces
//   - correct-way:             capability interfaces plus constructor injection
//
// Usage
//
//	singletons                         # run every page in order
//	singletons -page protocol          # run one page
//	singletons -page protocol,correct-way
//	singletons -list                   # print page names and titles
//
// Environment
//
//	SINGLETON_PAGES       comma-separated default for -page
//	SINGLETON_LOG_PREFIX  log prefix (default "singletons")
package main
