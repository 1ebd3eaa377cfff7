// Package config provides run options, the category wordlist type, the
// built-in default wordlists, and the loading of wordlist and custom
// parameter files.
package config
