// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.astrophena.name/botapi/internal/cli"
	"go.astrophena.name/botapi/internal/request"
	"go.astrophena.name/botapi/internal/store"
	"go.astrophena.name/botapi/internal/tgmarkup"
	"go.astrophena.name/botapi/internal/util/syncx"
	"go.astrophena.name/botapi/params"
	"go.astrophena.name/botapi/types"

	"github.com/mmcdole/gofeed"
)

const (
	// maxConcurrentFetches limits the number of feeds fetched at once.
	maxConcurrentFetches = 4
	// maxSeenItems is how many posted item IDs are remembered per feed.
	maxSeenItems = 200
)

func (a *app) feed(ctx context.Context, env *cli.Env) error {
	if len(env.Args) == 0 {
		return fmt.Errorf("%w: feed expects a chat", cli.ErrInvalidArgs)
	}
	chat, err := recipient(env.Args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrInvalidArgs, err)
	}
	urls := env.Args[1:]
	if len(urls) == 0 {
		urls = a.cfg.Feeds
	}
	if len(urls) == 0 {
		return fmt.Errorf("%w: no feeds given", cli.ErrInvalidArgs)
	}

	st, err := store.Open(ctx, cmp.Or(*a.state, a.cfg.State))
	if err != nil {
		return err
	}
	defer st.Close()

	var sent int
	feeds := a.fetchFeeds(ctx, env, urls)
	for i, feed := range feeds {
		if feed == nil {
			continue
		}
		n, err := a.postFeed(ctx, env, st, chat, urls[i], feed)
		sent += n
		if err != nil {
			return err
		}
	}
	env.Logf("posted %d items", sent)
	return nil
}

// postFeed posts the latest items of feed that were not posted before and
// records them in st.
func (a *app) postFeed(ctx context.Context, env *cli.Env, st store.Store, chat types.Recipient, url string, feed *gofeed.Feed) (sent int, err error) {
	key := "feed:" + url
	var seen []string
	if b, err := st.Get(ctx, key); err != nil {
		return 0, err
	} else if b != nil {
		if err := json.Unmarshal(b, &seen); err != nil {
			return 0, fmt.Errorf("state of %s: %w", url, err)
		}
	}
	defer func() {
		if sent == 0 {
			return
		}
		if len(seen) > maxSeenItems {
			seen = seen[len(seen)-maxSeenItems:]
		}
		b, merr := json.Marshal(seen)
		if merr == nil {
			merr = st.Set(ctx, key, b)
		}
		err = errors.Join(err, merr)
	}()

	fresh := slices.DeleteFunc(slices.Clone(feed.Items), func(item *gofeed.Item) bool {
		return slices.Contains(seen, itemID(item))
	})
	for _, item := range latest(fresh, a.limit) {
		msg := formatItem(feed, item)
		opts := params.Of("link_preview_options", `{"is_disabled":true}`).Merge(msg.Params())
		if _, err := a.c.Content().SendMessage(ctx, chat, msg.Text, opts); err != nil {
			return sent, err
		}
		if err := a.check(env, "sendMessage"); err != nil {
			return sent, err
		}
		fmt.Fprintln(env.Stdout, cmp.Or(item.Link, item.Title))
		seen = append(seen, itemID(item))
		sent++
	}
	return sent, nil
}

// itemID identifies a feed item across fetches.
func itemID(item *gofeed.Item) string { return cmp.Or(item.GUID, item.Link, item.Title) }

// fetchFeeds fetches and parses feeds concurrently. Feeds that fail are
// logged and left nil.
func (a *app) fetchFeeds(ctx context.Context, env *cli.Env, urls []string) []*gofeed.Feed {
	feeds := make([]*gofeed.Feed, len(urls))
	g := syncx.NewGroup(maxConcurrentFetches)
	for i, url := range urls {
		g.Go(func() {
			fp := gofeed.NewParser()
			fp.Client = a.httpClient()
			fp.UserAgent = request.UserAgent()
			feed, err := fp.ParseURLWithContext(url, ctx)
			if err != nil {
				env.Logf("fetching %s: %v", url, err)
				return
			}
			feeds[i] = feed
		})
	}
	g.Wait()
	return feeds
}

// latest returns at most n newest items, oldest first.
func latest(items []*gofeed.Item, n int) []*gofeed.Item {
	items = slices.Clone(items)
	slices.SortStableFunc(items, func(a, b *gofeed.Item) int {
		return published(a).Compare(published(b))
	})
	if n >= 0 && len(items) > n {
		items = items[len(items)-n:]
	}
	return items
}

func published(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	return time.Time{}
}

func formatItem(feed *gofeed.Feed, item *gofeed.Item) tgmarkup.Message {
	var b tgmarkup.Builder
	if feed.Title != "" {
		b.Bold(feed.Title).Text("\n")
	}
	title := item.Title
	if title == "" {
		title = item.Link
	}
	if item.Link != "" {
		b.Link(title, item.Link)
	} else {
		b.Text(title)
	}
	return b.Message()
}
