// Package usercli provisions labmaint accounts from the command line.
package usercli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dmitrijs2005/labmaint/internal/flagx"
	"github.com/dmitrijs2005/labmaint/internal/server/models"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

type Registrar interface {
	Register(ctx context.Context, usuario, contrasena, rol string) (*models.Usuario, error)
}

// Options are the command's own flags:
//
//	-u string     username (prompted when absent)
//	-rol string   admin or solo_vista (default solo_vista)
type Options struct {
	Usuario string
	Rol     string
}

func ParseOptions(args []string) (Options, error) {
	opts := Options{Rol: models.RolSoloVista}

	fs := flag.NewFlagSet("usuarios", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.Usuario, "u", "", "username")
	fs.StringVar(&opts.Rol, "rol", opts.Rol, "role: admin or solo_vista")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-u", "-rol"})); err != nil {
		return Options{}, err
	}

	if opts.Rol != models.RolAdmin && opts.Rol != models.RolSoloVista {
		return Options{}, fmt.Errorf("rol inválido %q: use %s o %s", opts.Rol, models.RolAdmin, models.RolSoloVista)
	}
	return opts, nil
}

// Run prompts for whatever opts lack and registers the account.
func Run(ctx context.Context, r Registrar, opts Options, in io.Reader, w io.Writer) error {
	reader := bufio.NewReader(in)

	if opts.Usuario == "" {
		u, err := getSimpleText(reader, "Usuario", w)
		if err != nil {
			return err
		}
		opts.Usuario = u
	}

	pw, err := getPassword(w)
	if err != nil {
		return err
	}
	defer clear(pw)

	u, err := r.Register(ctx, opts.Usuario, string(pw), opts.Rol)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Usuario %q creado (id %d, rol %s)\n", u.Usuario, u.ID, u.Rol)
	return nil
}

func getSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func getPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Contraseña: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}
