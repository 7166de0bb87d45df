// Command picoplaca answers whether a vehicle may be on Quito's roads at a
// given date and time under the Pico y Placa ordinance.
//
// Usage:
//
//	picoplaca -p|--plate PLATE -d|--date DATE -t|--time TIME [-o|--online]
//
// Exit code 0 with the verdict sentence on stdout; non-zero with a
// descriptive error on stderr for invalid input, missing credentials, or an
// unrecoverable online lookup failure.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"picoplaca/internal/holiday"
	"picoplaca/internal/platform/config"
	"picoplaca/internal/prediction"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("picoplaca", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var plateArg, dateArg, timeArg string
	var online bool
	fs.StringVar(&plateArg, "p", "", "the vehicle's plate: XXX-YYYY or XX-YYYY")
	fs.StringVar(&plateArg, "plate", "", "the vehicle's plate: XXX-YYYY or XX-YYYY")
	fs.StringVar(&dateArg, "d", "", "the date to be checked: YYYY-MM-DD")
	fs.StringVar(&dateArg, "date", "", "the date to be checked: YYYY-MM-DD")
	fs.StringVar(&timeArg, "t", "", "the time to be checked: HH:MM")
	fs.StringVar(&timeArg, "time", "", "the time to be checked: HH:MM")
	fs.BoolVar(&online, "o", false, "use the external public holidays API")
	fs.BoolVar(&online, "online", false, "use the external public holidays API")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if plateArg == "" || dateArg == "" || timeArg == "" {
		fmt.Fprintln(stderr, "picoplaca requires --plate, --date and --time")
		fs.Usage()
		return 2
	}

	cfg := config.FromEnv()
	// Informational logging stays quiet in the CLI; retry warnings and
	// errors still reach stderr.
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	opts := []prediction.Option{prediction.WithLogger(log)}
	if online {
		oracle, err := newOnlineOracle(cfg, log)
		if err != nil {
			fmt.Fprintf(stderr, "picoplaca: %v\n", err)
			return 1
		}
		opts = append(opts, prediction.WithOnline(oracle))
	}

	svc, err := prediction.New(holiday.NewOffline(), opts...)
	if err != nil {
		fmt.Fprintf(stderr, "picoplaca: %v\n", err)
		return 1
	}

	verdict, err := svc.Evaluate(context.Background(), prediction.Request{
		Plate:  plateArg,
		Date:   dateArg,
		Time:   timeArg,
		Online: online,
	})
	if err != nil {
		fmt.Fprintf(stderr, "picoplaca: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, verdict.Message())
	return 0
}

func newOnlineOracle(cfg config.Config, log *slog.Logger) (holiday.Oracle, error) {
	opts := []holiday.OnlineOption{
		holiday.WithHTTPClient(&http.Client{Timeout: cfg.LookupTimeout}),
		holiday.WithRetries(cfg.LookupRetries),
		holiday.WithLogger(log),
	}
	if cfg.HolidaysBaseURL != "" {
		opts = append(opts, holiday.WithBaseURL(cfg.HolidaysBaseURL))
	}
	return holiday.NewOnline(cfg.HolidaysAPIKey, opts...)
}
