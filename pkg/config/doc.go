/*
Package config manages run configuration for textfix.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	     +-------------+-------------+
	     |             |             |
	+----+----+   +----+----+   +----+----+
	|  YAML   |   |  JSON   |   |   HCL   |
	+---------+   +---------+   +---------+

🎯 Purpose:
- Says where to scan and which files are eligible
- Says which replacement table to apply
- Falls back to the built-in defaults for anything left unset

🔄 Flow:
1. Discover or read a config file
2. Decode it by extension, rejecting unknown fields
3. Fill defaults and validate
4. Build the replacement table

With no config file at all, Default reproduces the stock run: scan ./src,
skip node_modules and i18n directories, skip LanguageSelector.jsx, touch
only .jsx/.js/.tsx/.ts files, apply the built-in table.
*/
package config
