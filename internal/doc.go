// Package internal contains the core implementation packages for the Nexus
// page composer.
//
// This package follows Go's internal package convention, making these
// packages unavailable for import by external modules while providing
// all the core functionality for the nexus CLI tool.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - composer: Region-driven page composition with a fixed operation allow-list
//   - theme: Slideshow slots, column widths, and footer options
//   - sanitize: HTML escaping and tag stripping
//   - i18n: Locale matching and the layout's string catalog
//   - assets: Idempotent script/style bundle attachment
//   - config: Configuration management with validation and security
//   - pagefile: YAML page input loading
//   - server: Preview HTTP server with WebSocket live reload
//   - watcher: File system monitoring with debouncing
//   - logging: Structured logging over log/slog
package internal
