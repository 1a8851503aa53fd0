package cmd

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/zostay/go-mimetype"
)

var (
	serveAddrFlag      string
	verbosityTraceFlag bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a debug service that reports the media type of each request",
	Long: `Run a small HTTP service that parses the Content-type header of every
request it receives and responds with a JSON breakdown of the effective
media type. Useful for checking what a client on the other end of a
proxy chain is actually sending.`,
	RunE: RunServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddrFlag, "addr", ":8080", "Address to listen on")
	serveCmd.Flags().BoolVar(&verbosityTraceFlag, "vv", false, "Verbosity: trace logging")
	rootCmd.AddCommand(serveCmd)
}

type reportParameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type mediaTypeReport struct {
	MediaType  string            `json:"mediaType"`
	Type       string            `json:"type"`
	Subtype    string            `json:"subtype"`
	Parameters []reportParameter `json:"parameters"`
}

func RunServe(cmd *cobra.Command, args []string) error {
	logLevel := zerolog.DebugLevel
	if verbosityTraceFlag {
		logLevel = zerolog.TraceLevel
	}
	log.Logger = log.Level(logLevel).Output(zerolog.ConsoleWriter{Out: os.Stdout})

	r := chi.NewRouter()
	r.HandleFunc("/*", reportMediaType)

	log.Info().Str("addr", serveAddrFlag).Msg("listening")
	return http.ListenAndServe(serveAddrFlag, r)
}

func reportMediaType(w http.ResponseWriter, r *http.Request) {
	mt, err := mimetype.ExtractFromHeader(r.Header)
	if err != nil {
		log.Debug().
			Err(err).
			Strs("values", r.Header.Values(mimetype.ContentType)).
			Msg("no usable media type")
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	log.Trace().Str("mediaType", mt.String()).Msg("parsed request media type")

	report := mediaTypeReport{
		MediaType:  mt.String(),
		Type:       mt.Type(),
		Subtype:    mt.Subtype(),
		Parameters: []reportParameter{},
	}
	for _, name := range mt.Parameters().Names() {
		report.Parameters = append(report.Parameters, reportParameter{
			Name:  name,
			Value: mt.Parameter(name),
		})
	}

	w.Header().Set(mimetype.ContentType, "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		log.Error().Err(err).Msg("failed to write report")
	}
}
