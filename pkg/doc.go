// Package pkg provides the core libraries for lexicloud.
//
// # Overview
//
// Lexicloud profiles what people actually say. Messages stream in per
// place (a channel, a room); for every person the engine keeps a bounded,
// decaying vocabulary weighted by how distinctive each token is relative
// to the places they talk in, and renders that "idiom" as a word cloud.
//
// The typical data flow:
//
//	message stream / history archive
//	         ↓
//	    [idiom] package (tokenize, track, weight)
//	         ↓
//	    [cloud] package (size, color, place, paint)
//	         ↓
//	    PNG output
//
// # Main Packages
//
// [idiom] - The lexical profiling engine: whitespace tokenizer with edge
// punctuation trimming and smart lowercasing, a bounded decayed top-K
// tracker, and the dual-scope store that turns place-level frequency into
// person-level salience.
//
// [cloud] - The word-cloud layout engine: drawables (text via freetype/gg,
// images via imaging), bitset collision masks, spiral placement from the
// canvas center, and an HCL palette sampler seeded from an accent color.
//
// [emoji] - Custom-emoji support: reference parsing, a bounded sighting
// ring per place with leaderboard formatting, and an HTTP fetcher that
// resolves emoji IDs to images through the image cache.
//
// [history] - Message archive sources (MongoDB, in-memory) used to
// backfill newly registered places.
//
// [service] - The orchestrator tying everything together behind
// IngestMessage, RegisterPlace, CloudPNG, and EmojiRanking, configured
// via TOML.
//
// # Infrastructure
//
// [imagecache] - Byte cache backends (file, redis, memory, null) for
// fetched emoji assets.
//
// [httputil] - Retry with exponential backoff for remote fetches.
//
// [fonts] - System font discovery and parsing for the text rasterizer.
//
// [observability] - No-op hook interfaces (ingest, render, cache) that
// applications can replace with real metrics at startup.
//
// [errors] - Structured error codes shared across surfaces.
//
// [buildinfo] - Build-time version metadata injected via ldflags.
//
// [idiom]: https://pkg.go.dev/github.com/matzehuels/lexicloud/pkg/idiom
// [cloud]: https://pkg.go.dev/github.com/matzehuels/lexicloud/pkg/cloud
// [emoji]: https://pkg.go.dev/github.com/matzehuels/lexicloud/pkg/emoji
// [history]: https://pkg.go.dev/github.com/matzehuels/lexicloud/pkg/history
// [service]: https://pkg.go.dev/github.com/matzehuels/lexicloud/pkg/service
// [imagecache]: https://pkg.go.dev/github.com/matzehuels/lexicloud/pkg/imagecache
// [httputil]: https://pkg.go.dev/github.com/matzehuels/lexicloud/pkg/httputil
// [fonts]: https://pkg.go.dev/github.com/matzehuels/lexicloud/pkg/fonts
// [observability]: https://pkg.go.dev/github.com/matzehuels/lexicloud/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/lexicloud/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/lexicloud/pkg/buildinfo
package pkg
