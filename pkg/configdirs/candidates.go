package configdirs

// Candidates is a double-ended walk over the directories captured by
// [ConfigDirs.Search], yielding one name pair per directory. Front
// and back steps converge in the middle; every directory is consumed
// exactly once.
type Candidates struct {
	conf  WithLocal
	dirs  []string
	front int
	back  int
}

// Next yields the candidate under the next unvisited directory from
// the front. Once the walk is exhausted it stays exhausted.
func (c *Candidates) Next() (WithLocal, bool) {
	if c.front >= c.back {
		return WithLocal{}, false
	}
	dir := c.dirs[c.front]
	c.front++
	return c.conf.joinedTo(dir), true
}

// NextBack yields the candidate under the next unvisited directory
// from the back.
func (c *Candidates) NextBack() (WithLocal, bool) {
	if c.front >= c.back {
		return WithLocal{}, false
	}
	c.back--
	return c.conf.joinedTo(c.dirs[c.back]), true
}

// Skip advances past n directories from the front in one step and
// yields the candidate after them, like n calls to Next followed by
// one more. Skipping past the end exhausts the walk.
func (c *Candidates) Skip(n int) (WithLocal, bool) {
	if n < 0 {
		n = 0
	}
	if c.back-c.front <= n {
		c.front = c.back
		return WithLocal{}, false
	}
	c.front += n
	return c.Next()
}

// Len reports the exact number of candidates not yet yielded.
func (c *Candidates) Len() int {
	return c.back - c.front
}
