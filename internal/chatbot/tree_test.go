package chatbot

import (
	"errors"
	"testing"
)

func TestStart(t *testing.T) {
	root := Start()
	if root.ID != "start" {
		t.Fatalf("expected start node, got %q", root.ID)
	}
	if len(root.Options) == 0 {
		t.Fatal("expected start node to offer options")
	}
}

func TestStepTraversal(t *testing.T) {
	node, err := Step("start", 0)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if node.ID != "membership" {
		t.Fatalf("expected membership node, got %q", node.ID)
	}

	// last option of every answer node leads somewhere valid
	for id, n := range nodes {
		for i := range n.Options {
			if _, err := Step(id, i); err != nil {
				t.Errorf("Step(%q, %d): %v", id, i, err)
			}
		}
	}
}

func TestStepErrors(t *testing.T) {
	if _, err := Step("no-such-node", 0); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("expected ErrUnknownNode, got %v", err)
	}
	if _, err := Step("start", -1); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("expected ErrInvalidOption, got %v", err)
	}
	if _, err := Step("start", 99); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("expected ErrInvalidOption, got %v", err)
	}
}

func TestEveryNodeReachableFromStart(t *testing.T) {
	seen := map[string]bool{}
	queue := []string{startNodeID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if seen[id] {
			continue
		}
		seen[id] = true
		for _, opt := range nodes[id].Options {
			queue = append(queue, opt.Next)
		}
	}

	for id := range nodes {
		if !seen[id] {
			t.Errorf("node %q is unreachable from start", id)
		}
	}
}
