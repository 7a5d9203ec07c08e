// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package job

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		maxArgs int
		want    []string
		wantErr error
	}{
		{
			name: "simple command",
			line: "ls -l /tmp",
			want: []string{"ls", "-l", "/tmp"},
		},
		{
			name: "collapses whitespace",
			line: "  echo   hello\tworld  ",
			want: []string{"echo", "hello", "world"},
		},
		{
			name:    "empty line",
			line:    "",
			wantErr: ErrEmptyCommand,
		},
		{
			name:    "whitespace only",
			line:    "   \t  ",
			wantErr: ErrEmptyCommand,
		},
		{
			name:    "too many tokens",
			line:    "a b c d e f g h i j",
			wantErr: ErrTooManyArgs,
		},
		{
			name: "exactly at the limit",
			line: "a b c d e f g h i",
			want: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"},
		},
		{
			name:    "custom limit",
			line:    "a b c",
			maxArgs: 2,
			wantErr: ErrTooManyArgs,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.line, tc.maxArgs)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	j, err := New(100, []string{"echo", "hi"})
	require.NoError(t, err)
	assert.Equal(t, 100, j.ID)
	assert.Equal(t, []string{"echo", "hi"}, j.Args)
}

func TestNew_EmptyArgs(t *testing.T) {
	_, err := New(100, nil)
	assert.ErrorIs(t, err, ErrEmptyCommand)

	_, err = New(100, []string{""})
	assert.ErrorIs(t, err, ErrEmptyCommand)
}

func TestJobString(t *testing.T) {
	j, err := New(101, []string{"sleep", "5"})
	require.NoError(t, err)
	assert.Equal(t, "job 101: sleep 5", j.String())
}

func TestCounter(t *testing.T) {
	c := NewCounter()
	assert.Equal(t, FirstID, c.Next())
	assert.Equal(t, FirstID+1, c.Next())
	assert.Equal(t, FirstID+2, c.Next())
}

func TestCounter_Concurrent(t *testing.T) {
	const goroutines = 8
	const perGoroutine = 100

	c := NewCounter()
	ids := make(chan int, goroutines*perGoroutine)

	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range perGoroutine {
				ids <- c.Next()
			}
		}()
	}

	wg.Wait()
	close(ids)

	seen := make(map[int]bool, goroutines*perGoroutine)
	for id := range ids {
		assert.False(t, seen[id], "id %d issued twice", id)
		seen[id] = true
	}

	assert.Len(t, seen, goroutines*perGoroutine)
}
