/*
Package coe implements an encoder and decoder for the Xilinx COE memory
initialization format, restricted to images stored as 12-bit RGB444 values.

The file is plain text. Two header lines declare a radix of 16 and open the
initialization vector, then each pixel follows on its own line in row-major
order as exactly three lowercase hexadecimal digits. Every record is
terminated by a comma except the last which is terminated by a semicolon.

	memory_initialization_radix=16;
	memory_initialization_vector=
	f01,
	110,
	000;
*/
package coe

const (
	radixLine  = "memory_initialization_radix=16;"
	vectorLine = "memory_initialization_vector="

	recordDigits = 3
	maxValue     = 1<<(4*recordDigits) - 1

	separator  = ','
	terminator = ';'
)
