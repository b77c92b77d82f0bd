package msg

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"ecoscope/pkg/resource"
)

var messages = map[string]string{}

// init loads configs/messages.yml unless MESSAGES_FILE_PATH points elsewhere.
func init() {
	path, ok := os.LookupEnv("MESSAGES_FILE_PATH")
	if !ok {
		path = "configs/messages.yml"
	}
	Init(path)
}

// Init merges the messages in path into the catalogue, keyed by their
// dotted YAML path.
func Init(path string) {
	resolved, err := resource.Locate(path)
	if err != nil {
		log.Fatalf("Fail to read messages: %v", err)
	}

	v := viper.New()
	v.SetConfigFile(resolved)
	v.SetConfigType("yml")
	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("Fail to read messages: %v", err)
	}

	for _, key := range v.AllKeys() {
		messages[key] = v.GetString(key)
	}
}

// GetMessage returns the message for key with {0}, {1}... replaced by args.
func GetMessage(key string, args ...any) string {
	message, ok := messages[key]
	if !ok {
		return "Message not found: " + key
	}
	if len(args) == 0 {
		return message
	}

	pairs := make([]string, 0, 2*len(args))
	for i, arg := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", format(arg))
	}
	return strings.NewReplacer(pairs...).Replace(message)
}

func format(arg any) string {
	switch v := arg.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
