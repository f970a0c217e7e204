// Package input produces the chunk stream fed to a curtail.Writer.
//
// A Source yields byte chunks until io.EOF. Chunk boundaries carry no
// meaning. ReaderSource drains any io.Reader (normally stdin) and
// FollowSource tails a regular file the way tail -f does, waking up on
// fsnotify write events.
package input
