// Package prefs persists user preferences as string key-value pairs.
//
// folio stores a single preference, the colour theme. Backends:
//
//   - [FileStore]: a JSON object in ~/.config/folio/prefs.json (CLI default)
//   - [MemoryStore]: process-local, for tests and --no-persist
//   - [RedisStore]: shared storage when FOLIO_REDIS_URL is set
//
// # Theme
//
// [LoadTheme] reads the "theme" key and falls back to [Dark] when it is unset
// or holds an unknown value. [ToggleTheme] flips and persists it:
//
//	store, err := prefs.NewFileStore("")
//	if err != nil {
//	    return err
//	}
//	theme, err := prefs.ToggleTheme(ctx, store)
package prefs
