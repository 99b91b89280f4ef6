package value

import (
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "value")
