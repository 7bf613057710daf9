// Package cli implements the cropadvisor command-line interface.
//
// # Commands
//
// recommend - Suitable crops for a soil sample:
//
//	cropadvisor recommend --ph 6.5 --moisture 40 --nitrogen 90 --phosphorus 70 --potassium 50
//	cropadvisor recommend --input sample.yaml --format json
//	cropadvisor recommend --interactive
//
// With no reading flag and no --input the command prompts for each reading on
// stdin, re-asking when an answer is not a number. Answers are separated by
// any whitespace, so all five may be typed on one line.
// The default text format prints:
//
//	Based on the provided soil, moisture, and nutrient data, suitable crops are:
//	- Wheat
//	  Pest control suggestions for Wheat: Aphids, Armyworms
//	  Suggested crop rotation: Soybean
//	  Irrigation schedule: Irrigate every 7 days
//
// crops - The crop catalog:
//
//	cropadvisor crops --format table
//
// advise - Advisory text for one crop:
//
//	cropadvisor advise --crop wheat
//
// # Global Flags
//
//	--log-level   debug, info, warn or error (env LOG_LEVEL)
//	--debug       same as --log-level=debug
//
// # Output
//
// Every command accepts --output/-o (default stdout) and --format/-t
// (text, json, yaml, table; default text). Logs go to stderr as JSON.
//
// # Exit Codes
//
// 0 on success, 1 on any error such as malformed readings, an unreadable
// input file or an unknown format.
package cli
