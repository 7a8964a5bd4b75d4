package art

import (
	"io"
)

var art = []byte(`
 _                _
| |__  _ __ _   _| |_ ___  __ _  ___ _ __
| '_ \| '__| | | | __/ _ \/ _' |/ _ \ '_ \
| |_) | |  | |_| | ||  __/ (_| |  __/ | | |
|_.__/|_|   \__,_|\__\___|\__, |\___|_| |_|
                          |___/
`)

// WriteArtBytes writes the startup banner to w
func WriteArtBytes(w io.Writer) {
	w.Write(art)
}
