package projectlog

import (
	"os"

	"reserva_bot/config"

	"github.com/sirupsen/logrus"
)

func Init() {
	//logrus.SetFormatter(&JSONFormatter{PrettyPrint: true})
	logrus.SetFormatter(&JSONFormatter{})
	logrus.SetLevel(parseLevel(config.GetInstance().GetString(config.AppLogLevel)))
	logrus.SetReportCaller(config.GetInstance().GetBool(config.AppLogReportcaller))
	logrus.SetOutput(os.Stdout)
}

// parseLevel accepts logrus level names ("debug", "info", "warning", ...).
// Empty or unknown values fall back to info instead of silencing the log.
func parseLevel(s string) logrus.Level {
	level, err := logrus.ParseLevel(s)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
