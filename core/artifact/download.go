package artifact

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/google/uuid"
)

// Download streams the artifact archive to dest, writing progress to the
// client's Progress writer. The file is staged under a temporary name and
// renamed into place once complete, so a partial download never shadows a
// finished one.
func (c *Client) Download(ctx context.Context, a Artifact, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.URL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("download artifact %d: %w", a.Version, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download artifact %d: unexpected status %s", a.Version, resp.Status)
	}

	stage := fmt.Sprintf("%s.%s.part", dest, uuid.NewString()[:8])
	f, err := os.Create(stage)
	if err != nil {
		return err
	}

	if err := c.copyWithProgress(f, resp.Body, resp.ContentLength, a.Version); err != nil {
		f.Close()
		os.Remove(stage)
		return fmt.Errorf("download artifact %d: %w", a.Version, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(stage)
		return err
	}

	return os.Rename(stage, dest)
}

func (c *Client) copyWithProgress(dst io.Writer, src io.Reader, total int64, version int) error {
	out := c.Progress
	if out == nil {
		out = os.Stderr
	}

	fmt.Fprintf(out, "downloading server artifact %d... ", version)

	var done int64
	buf := make([]byte, 8192)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return werr
			}
			done += int64(n)
			if total > 0 {
				fmt.Fprintf(out, "\rdownloading server artifact %d... %d%%", version, done*100/total)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(out)
	return nil
}
