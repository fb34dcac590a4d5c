// Package config loads magetools project files and resolves the two roots a
// duplication works between.
//
//	            +-------------+
//	            |   Project   |
//	            |   (file)    |
//	            +------+------+
//	                   |
//	      +-----------+-----------+
//	      |           |           |
//	+-----+----+ +----+----+ +----+----+
//	|   YAML   | |   HCL   | |  JSON   |
//	|  Parser  | | Parser  | | Parser  |
//	+----------+ +---------+ +---------+
//	                   |
//	            +------+------+
//	            |    Roots    |
//	            +-------------+
//
// 🎯 Purpose:
// - Finds the nearest .magetools.{yaml,yml,hcl,json}
// - Parses folders, settings and copy options
// - Resolves the Magento root and the theme root
//
// 🔄 Root precedence:
// 1. Explicit overrides (flags, environment)
// 2. Project folders marked magento_root / magento_theme
// 3. The settings block
//
// Relative folder and settings paths resolve against the project file's
// directory.
//
// 🔍 Example:
//
//	folders:
//	  - path: .
//	    magento_root: true
//	  - path: app/design/frontend/Acme/default
//	    magento_theme: true
//	copy:
//	  ignore_patterns:
//	    - "**/.DS_Store"
package config
