package utils

import "github.com/sirupsen/logrus"

// MustNotErr logs err and exits the process when it is non-nil.
func MustNotErr(log logrus.FieldLogger, err error) {
	if err != nil {
		log.Fatal(err)
	}
}
