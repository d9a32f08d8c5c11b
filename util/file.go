package util

import "os"

// AppendToFile appends the given lines to the file, creating it when
// missing.
func AppendToFile(savePath string, lines ...string) error {
	f, err := os.OpenFile(savePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return err
	}

	defer f.Close()

	for _, l := range lines {
		if _, err = f.WriteString(l + "\n"); err != nil {
			return err
		}
	}
	return nil
}
