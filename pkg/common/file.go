package common

import (
	"io"
	"os"
)

func ReadFile(filename string) (data []byte, err error) {
	var f *os.File
	f, err = os.Open(filename)
	if err != nil {
		return
	}
	defer func() {
		e := f.Close()
		if e != nil {
			if err == nil {
				err = e
			}
		}
	}()
	return io.ReadAll(f)
}
