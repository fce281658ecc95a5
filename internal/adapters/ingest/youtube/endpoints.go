package youtube

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"strconv"
)

// Search fetches one page of video search results
func (c *Client) Search(ctx context.Context, query, hl, gl, cursor string) (SearchPage, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("hl", hl)
	q.Set("gl", gl)
	if cursor != "" {
		q.Set("cursor", cursor)
	}

	var out SearchPage
	if err := c.getJSON(ctx, "/search/", q, &out); err != nil {
		return SearchPage{}, err
	}
	return out, nil
}

// Comments fetches one page of comments for a video
func (c *Client) Comments(ctx context.Context, videoID, hl, gl, cursor string) (CommentsPage, error) {
	q := url.Values{}
	q.Set("id", videoID)
	q.Set("hl", hl)
	q.Set("gl", gl)
	if cursor != "" {
		q.Set("cursor", cursor)
	}

	var out CommentsPage
	if err := c.getJSON(ctx, "/video/comments/", q, &out); err != nil {
		return CommentsPage{}, err
	}
	return out, nil
}

// SearchVideos pages through search results until max videos are collected
// or the cursor runs out. Non video entries (shorts shelves, mixes) are skipped
func (c *Client) SearchVideos(ctx context.Context, query, hl, gl string, max int) ([]Video, error) {
	var (
		vids   []Video
		cursor string
	)
	for len(vids) < max {
		page, err := c.Search(ctx, query, hl, gl, cursor)
		if err != nil {
			return nil, err
		}
		for _, it := range page.Contents {
			if it.Type != "video" || it.Video == nil || it.Video.VideoID == "" {
				continue
			}
			vids = append(vids, *it.Video)
			if len(vids) >= max {
				break
			}
		}
		if page.CursorNext == "" || len(page.Contents) == 0 {
			break
		}
		cursor = page.CursorNext
		c.pause(ctx)
	}
	c.log.Info().Str("query", query).Int("videos", len(vids)).Msg("youtube search complete")
	return vids, nil
}

// AllComments pages through a video's comments until max are collected
// or the cursor runs out. Records without a comment id are skipped
func (c *Client) AllComments(ctx context.Context, videoID, hl, gl string, max int) ([]Comment, error) {
	var (
		out    []Comment
		cursor string
	)
	for len(out) < max {
		page, err := c.Comments(ctx, videoID, hl, gl, cursor)
		if err != nil {
			return nil, err
		}
		for _, cm := range page.Comments {
			if cm.CommentID == "" {
				continue
			}
			out = append(out, cm)
			if len(out) >= max {
				break
			}
		}
		if page.CursorNext == "" || len(page.Comments) == 0 {
			break
		}
		cursor = page.CursorNext
		c.pause(ctx)
	}
	c.log.Debug().Str("video_id", videoID).Int("comments", len(out)).Msg("youtube comments complete")
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	resp, err := c.Do(ctx, path, q)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("youtube close body failed")
		}
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// pause spaces out consecutive page fetches unless the context is done
func (c *Client) pause(ctx context.Context) {
	if c.opts.PageDelay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	default:
		c.sleep(c.opts.PageDelay)
	}
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	i, _ := strconv.Atoi(s)
	return i
}
