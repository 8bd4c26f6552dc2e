// Package config loads the settings of a rewrite run.
//
//	            +-------------+
//	            |   Config    |
//	            | (Settings)  |
//	            +------+------+
//	                   |
//	      +------------+------------+
//	      |            |            |
//	+-----+----+ +-----+----+ +-----+----+
//	|   YAML   | |   JSON   | |   HCL    |
//	|  Parser  | |  Parser  | |  Parser  |
//	+----------+ +----------+ +----------+
//
// A config names the root directory, the include/exclude globs and the ordered
// rule list. Parsers are picked by file extension through Register/GetParser.
// Without a config file the built-in defaults are used: root "src_new", every
// "**/*.ts" file and the built-in import rules. REPATH_ROOT, REPATH_INCLUDE and
// REPATH_EXCLUDE override the file.
//
// Example .repath.yaml:
//
//	root: src_new
//	include: ["**/*.ts", "**/*.tsx"]
//	exclude: ["**/node_modules/**"]
//	extend_defaults: true
//	rules:
//	  - pattern: from ['"]\.\./legacy/(\w+)['"]
//	    replacement: from '../../shared/$1'
//	    expand: true
package config
