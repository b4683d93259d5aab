// Package file provides a filesystem implementation of driven.DocumentLoader.
// Documents are read in full into memory; there is no size limit and no
// streaming.
package file
