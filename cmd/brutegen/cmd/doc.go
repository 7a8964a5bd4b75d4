/*
Package cmd provides all the commands for the brutegen binary.

The commands are separated by file, with the prefix for each command corresponding to the parent command, i.e.
charsetList.go corresponds to charset list

there are a few global CLI flags that can be used to configure how brutegen will operate. These are defined
by the globally exposed variables and the persistent flags on the root command. The charset, length and
threads can also be set in $HOME/.brutegen.yaml or with BRUTEGEN_ prefixed environment variables.

Usage

	brutegen gen -c d -l 4 -t 4
	brutegen random -c h -l 12 -n 1000 --seed 7
	brutegen count -c all -l 1-12

*/
package cmd
