/*
Package generate connects the command line to the engine.

It turns flags into GenerateOptions, prints the settings, asks for confirmation before very large
outputs, opens the output file, draws progress and writes the optional stats file. The count and
charset listing commands live here as well.
*/
package generate
