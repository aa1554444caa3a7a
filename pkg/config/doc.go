/*
Package config manages the run configuration for iconshift.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   JSON   | |   YAML   | |   HCL    |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Holds the knobs of a migration run (mapping file, eligible extensions,
  excluded directories, detection patterns, the special icon table file)
- Supplies the built-in defaults when no file is given
- Compiles and checks every pattern before a run starts

🔄 Flow:
1. Load picks a parser by file extension
2. The parser decodes the format-specific syntax into Config
3. Validate fills defaults and compiles the detection patterns

🔍 Example:

	cfg, err := config.Load(ctx, ".iconshift.yaml")
	patterns := cfg.CompiledPatterns()
*/
package config
