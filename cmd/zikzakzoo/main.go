// Command zikzakzoo plays tic-tac-toe against a seeded opponent and proves
// the outcome: the transcript of a round is handed to a prover that runs
// the verifier guest and returns only whether the human won.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"zikzakzoo/game"
	"zikzakzoo/internal/config"
	"zikzakzoo/internal/ledger"
	"zikzakzoo/internal/prover"
	"zikzakzoo/internal/session"
)

const usage = `usage: zikzakzoo <command> [flags]

commands:
  play                 play a round, then prove and record the result
  verify <transcript>  prove a "seed,move,..." transcript
  history [-n N]       list recently recorded rounds`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		config.Exitf("load config: %v", err)
	}
	if err := run(ctx, cfg, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		config.Exitf("zikzakzoo: %v", err)
	}
}

// app bundles what every subcommand needs.
type app struct {
	cfg    config.Config
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	prover prover.Prover
}

func run(ctx context.Context, cfg config.Config, args []string, in io.Reader, out, errOut io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintln(errOut, usage)
		return errors.New("missing command")
	}

	key, err := prover.ParseKey(cfg.ProverKey)
	if err != nil {
		return err
	}
	p, err := prover.NewLocal(prover.WithKey(key), prover.WithMemLimit(cfg.MemLimitMB))
	if err != nil {
		return fmt.Errorf("set up prover: %w", err)
	}
	a := &app{cfg: cfg, in: in, out: out, errOut: errOut, prover: p}

	switch args[0] {
	case "play":
		return a.play(ctx, args[1:])
	case "verify":
		return a.verify(ctx, args[1:])
	case "history":
		return a.history(ctx, args[1:])
	default:
		fmt.Fprintln(errOut, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *app) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

func (a *app) play(ctx context.Context, args []string) error {
	fs := a.flagSet("play")
	seed := fs.Uint64("seed", a.cfg.Seed, "opponent seed (0 = current time)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := []session.Option{session.WithSeed(*seed)}
	if a.cfg.Events {
		opts = append(opts, session.WithEventLogger(log.New(a.errOut, "", log.LstdFlags)))
	}
	s := session.New(a.in, a.out, opts...)

	fmt.Fprintln(a.out, "Welcome to ZiK-ZaK-Zoo!")
	t, _, err := s.Play(ctx)
	if err != nil {
		if session.IsInputClosed(err) {
			return fmt.Errorf("input ended before the round finished, moves so far: %s", t.String())
		}
		return fmt.Errorf("play round: %w", err)
	}

	fmt.Fprintln(a.out, "\nGame Round Data:")
	fmt.Fprintf(a.out, "Seed used: %d\n", t.Seed)
	fmt.Fprintf(a.out, "Player moves: %v\n", t.Moves())

	input := t.String()
	proof, err := a.prove(ctx, input)
	if err != nil {
		return err
	}
	if err := a.record(ctx, t.Seed, input, proof); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Wow it's %t that you won at ZiK-ZaK-ZoO!\n", proof.Output)
	return nil
}

func (a *app) verify(ctx context.Context, args []string) error {
	fs := a.flagSet("verify")
	record := fs.Bool("record", false, "store the result in the ledger")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("verify takes exactly one transcript")
	}
	input := fs.Arg(0)

	proof, err := a.prove(ctx, input)
	if err != nil {
		return err
	}
	if *record {
		// Malformed input still verifies as false; it just has no row.
		if t, err := game.ParseTranscript(input); err != nil {
			fmt.Fprintf(a.errOut, "Not recorded: %v\n", err)
		} else if err := a.record(ctx, t.Seed, input, proof); err != nil {
			return err
		}
	}
	fmt.Fprintln(a.out, proof.Output)
	return nil
}

func (a *app) history(ctx context.Context, args []string) error {
	fs := a.flagSet("history")
	n := fs.Int("n", 10, "number of rounds to list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := ledger.Open(a.cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	rounds, err := store.List(ctx, *n)
	if err != nil {
		return err
	}
	for _, r := range rounds {
		fmt.Fprintf(a.out, "%s  %s  %-5t  %s\n",
			r.CreatedAt.Format("2006-01-02T15:04:05Z"), r.ID, r.Verdict, r.Transcript)
	}
	return nil
}

// prove runs the guest on input and checks the returned proof.
func (a *app) prove(ctx context.Context, input string) (*prover.Proof, error) {
	fmt.Fprintln(a.errOut, "Proving execution of vm...")
	proof, err := a.prover.Prove(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("prove: %w", err)
	}
	fmt.Fprintf(a.errOut, " output is %t!\n", proof.Output)

	fmt.Fprint(a.errOut, "Verifying execution...")
	if err := a.prover.Verify(ctx, proof); err != nil {
		fmt.Fprintln(a.errOut)
		return nil, fmt.Errorf("verify proof: %w", err)
	}
	fmt.Fprintln(a.errOut, "  Succeeded!")
	return proof, nil
}

// record stores a proven transcript in the ledger.
func (a *app) record(ctx context.Context, seed uint64, transcript string, proof *prover.Proof) error {
	store, err := ledger.Open(a.cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	r, err := store.Record(ctx, ledger.Round{
		Seed:       seed,
		Transcript: transcript,
		Verdict:    proof.Output,
		Backend:    proof.Backend,
	})
	if err != nil {
		return fmt.Errorf("record round: %w", err)
	}
	fmt.Fprintf(a.errOut, "Recorded round %s\n", r.ID)
	return nil
}
