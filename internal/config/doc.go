// Package config provides simple, local-first configuration for confirm.
//
// All configuration lives in the project's .confirm/ directory:
//
//	.confirm/
//	├── config.json        # or config.yaml; YAML wins when both exist
//	├── .gitignore         # keeps logs out of git
//	└── confirm.log        # written when logging to a file
//
// The config file holds UI preferences, logging and the dialog sizing
// heuristic:
//
//	{
//	  "theme": "confirm",
//	  "content_mode": "text_with_newlines",
//	  "log_level": "info",
//	  "log_file": "confirm.log",
//	  "debug": false,
//	  "sizing": {
//	    "min_width": 28,
//	    "max_width_short": 40,
//	    "max_width_long": 80,
//	    "min_height": 2,
//	    "max_height": 40
//	  }
//	}
//
// Keys missing from the file keep their defaults. Malformed sizing
// thresholds (non-positive or inverted) fail Load instead of surfacing
// later when a dialog is sized.
//
// String values can reference environment variables using $VAR or ${VAR}:
//
//	{
//	  "log_level": "${CONFIRM_LOG_LEVEL}"
//	}
//
// Example usage:
//
//	manager := config.NewManager("/path/to/project")
//	if err := manager.Load(); err != nil {
//		log.Fatal(err)
//	}
//
//	factory, err := dialog.NewDefaultFactory(manager.Get().Sizing)
package config
