// Package config reads the YAML description of a set of log targets and
// builds them.
//
// A configuration file looks like this:
//
//	log_level: info
//	log_format: text
//	targets:
//	  - kind: stdout
//	    level: trace
//	    ignore: [hyper, tokio]
//	    ignore_if: 'source startsWith "net" && level >= DEBUG'
//	  - kind: file
//	    level: error
//	    path: /var/log/app.log
//	    mode: append
//	  - kind: rotate
//	    level: info
//	    path: /var/log/app-rotated.log
//	    max_size_mb: 10
//	    max_backups: 3
//	    max_age_days: 7
//	    compress: true
//	  - kind: serial
//	    level: warn
//	    path: /dev/ttyUSB0
//	    retries: 3
//	  - kind: serial
//	    level: error
//	    path: /dev/ttyS1
//	    timeout_ms: 250
//
// The top-level log_* keys configure the command-line diagnostics logger and
// are read by the CLI's flag resolver; [Config.Build] ignores them.
package config
