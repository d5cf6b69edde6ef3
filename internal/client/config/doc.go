// Package config loads runtime configuration for the gallery CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv). A dotenv file given with -e or
//     -env, or ./.env when present, is loaded first without overriding
//     variables that are already set.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// The result is checked with (*Config).Validate.
//
// Supported flags
//
//	-a string   base URL of the API
//	-t int      request timeout (milliseconds)
//	-d string   path of the local SQLite database
//	-l string   log level
//
// Environment
//
//	GALLERY_API_BASE_URL
//	GALLERY_REQUEST_TIMEOUT_MS
//	GALLERY_DB_PATH
//	GALLERY_LOG_LEVEL
//	GALLERY_LOG_FORMAT         pretty | json | text
//	GALLERY_COLOR_SCHEME_FILE
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so the value can be
// either a string like "5s" or an integer number of milliseconds:
//
//	{
//	  "api_base_url": "http://127.0.0.1:8000/api",
//	  "request_timeout": "5s",
//	  "db_path": "gallery.db",
//	  "log_level": "info",
//	  "log_format": "pretty",
//	  "color_scheme_file": ""
//	}
package config
