package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/furball-art/furball/internal/client/client"
	"github.com/furball-art/furball/internal/models"
)

func (a *App) Login(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: login <account>", errUsage)
	}
	if err := a.wallet.SignIn(ctx, args[0]); err != nil {
		return err
	}
	a.log.Info(ctx, "signed in", "account", args[0])
	a.printf("Signed in as %s\n", args[0])
	return nil
}

// Logout signs the wallet out. With --forget it also drops the cached
// profile reference, so the next profile set publishes a new document.
func (a *App) Logout(ctx context.Context, args []string) error {
	forget := len(args) == 1 && args[0] == "--forget"
	if len(args) > 0 && !forget {
		return fmt.Errorf("%w: logout [--forget]", errUsage)
	}
	if err := a.wallet.SignOut(ctx); err != nil {
		return err
	}
	if forget {
		if err := a.identity.ClearProfileID(ctx); err != nil {
			return err
		}
	}
	a.println("Signed out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	account := a.wallet.AccountID()
	if account == "" {
		account = "(signed out)"
	}
	p, err := a.identity.Provider(ctx)
	if err != nil {
		return err
	}
	profile := "(unpublished)"
	if id, ok, err := a.identity.ProfileID(ctx); err != nil {
		return err
	} else if ok {
		profile = id.String()
	}
	a.printf("Account: %s\nDID:     %s\nProfile: %s\n", account, p.DID(), profile)
	return nil
}

func (a *App) Profile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: profile set key=value... | profile show", errUsage)
	}
	if err := a.ensureSession(ctx); err != nil {
		return err
	}
	switch args[0] {
	case "show":
		return a.profileShow(ctx)
	case "set":
		return a.profileSet(ctx, args[1:])
	default:
		return fmt.Errorf("%w: unknown profile command %q", errUsage, args[0])
	}
}

func (a *App) profileShow(ctx context.Context) error {
	p, err := a.profiles.GetProfile(ctx)
	if err != nil {
		return err
	}
	if p == nil {
		a.println("No profile published yet")
		return nil
	}
	a.printProfile(p)
	return nil
}

func (a *App) profileSet(ctx context.Context, args []string) error {
	values, order, err := parseAssignments(args)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("%w: profile set key=value...", errUsage)
	}

	p, err := a.profiles.GetProfile(ctx)
	switch {
	case errors.Is(err, client.ErrNotFound) && a.config.RecreateStaleProfile:
		a.log.Warn(ctx, "cached profile no longer resolves, publishing a new one", "error", err)
		p = nil
	case err != nil:
		return err
	}
	if p == nil {
		p = &models.UserProfile{}
	}

	for _, key := range order {
		value := values[key]
		switch {
		case key == "name":
			p.Name = value
		case key == "bio":
			p.Bio = value
		case key == "avatar":
			id := models.DocID(value)
			if err := id.Validate(); err != nil {
				return err
			}
			p.Avatar = id
		case strings.HasPrefix(key, "link."):
			name := strings.TrimPrefix(key, "link.")
			if p.Links == nil {
				p.Links = map[string]string{}
			}
			if value == "" {
				delete(p.Links, name)
			} else {
				p.Links[name] = value
			}
		default:
			return fmt.Errorf("%w: unknown profile field %q", errUsage, key)
		}
	}
	p.AccountID = a.wallet.AccountID()

	id, err := a.profiles.UpsertProfile(ctx, *p)
	if err != nil {
		return err
	}
	a.log.Info(ctx, "profile published", "id", id.String())
	a.printf("Profile published: %s\n", id)
	return nil
}

func (a *App) Art(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: art upload|show|image|stegod", errUsage)
	}
	if err := a.ensureSession(ctx); err != nil {
		return err
	}
	switch args[0] {
	case "upload":
		return a.artUpload(ctx, args[1:])
	case "show":
		return a.artShow(ctx, args[1:])
	case "image":
		return a.artImage(ctx, args[1:])
	case "stegod":
		return a.artStegod(ctx, args[1:])
	default:
		return fmt.Errorf("%w: unknown art command %q", errUsage, args[0])
	}
}

// Lookup shows artwork metadata by id.
func (a *App) Lookup(ctx context.Context, args []string) error {
	if err := a.ensureSession(ctx); err != nil {
		return err
	}
	return a.artShow(ctx, args)
}

func (a *App) artUpload(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("%w: art upload <image> <stegod> title=...", errUsage)
	}
	values, _, err := parseAssignments(args[2:])
	if err != nil {
		return err
	}
	meta := models.ArtMetadata{
		Title:       values["title"],
		Description: values["description"],
		Artist:      a.wallet.AccountID(),
		Original:    models.DocID(values["original"]),
	}
	if meta.Title == "" {
		return fmt.Errorf("%w: title is required", errUsage)
	}
	if !meta.Original.IsZero() {
		if err := meta.Original.Validate(); err != nil {
			return err
		}
	}

	image, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}
	payload, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read stegod: %w", err)
	}

	if meta.Image, err = a.blobs.UploadArt(ctx, image); err != nil {
		return err
	}
	if meta.Stegod, err = a.blobs.UploadArtStegod(ctx, payload); err != nil {
		return err
	}
	id, err := a.artworks.CreateArtMetadata(ctx, meta)
	if err != nil {
		return err
	}
	a.log.Info(ctx, "artwork published", "id", id.String(), "image", meta.Image.String(), "stegod", meta.Stegod.String())
	a.printf("Artwork published: %s\n", id)
	return nil
}

func docArg(args []string, usage string) (models.DocID, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("%w: %s", errUsage, usage)
	}
	id := models.DocID(args[0])
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

func (a *App) artShow(ctx context.Context, args []string) error {
	id, err := docArg(args, "art show <cid>")
	if err != nil {
		return err
	}
	m, err := a.artworks.GetArtMetadata(ctx, id)
	if err != nil {
		return err
	}
	a.printf("Title:       %s\n", m.Title)
	if m.Description != "" {
		a.printf("Description: %s\n", m.Description)
	}
	a.printf("Artist:      %s\n", m.Artist)
	a.printf("Image:       %s\n", m.Image)
	a.printf("Stegod:      %s\n", m.Stegod)
	if !m.Original.IsZero() {
		a.printf("Original:    %s\n", m.Original)
	}
	return nil
}

func (a *App) artImage(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: art image <cid> <file>", errUsage)
	}
	id, err := docArg(args, "art image <cid> <file>")
	if err != nil {
		return err
	}
	m, err := a.artworks.GetArtMetadata(ctx, id)
	if err != nil {
		return err
	}
	data, err := a.blobs.GetBlob(ctx, m.Image)
	if err != nil {
		return err
	}
	return a.writeOut(args[1], data)
}

func (a *App) artStegod(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: art stegod <cid> <file>", errUsage)
	}
	id, err := docArg(args, "art stegod <cid> <file>")
	if err != nil {
		return err
	}
	data, err := a.artworks.ResolveStegodPayload(ctx, id)
	if err != nil {
		return err
	}
	return a.writeOut(args[1], data)
}

func (a *App) writeOut(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	a.printf("Wrote %d bytes to %s\n", len(data), path)
	return nil
}

func (a *App) printProfile(p *models.UserProfile) {
	a.printf("Name:    %s\n", p.Name)
	if p.Bio != "" {
		a.printf("Bio:     %s\n", p.Bio)
	}
	if !p.Avatar.IsZero() {
		a.printf("Avatar:  %s\n", p.Avatar)
	}
	a.printf("Account: %s\n", p.AccountID)
	names := make([]string, 0, len(p.Links))
	for name := range p.Links {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		a.printf("Link %s: %s\n", name, p.Links[name])
	}
}
