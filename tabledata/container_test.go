package tabledata

import (
	"testing"

	"github.com/pkg/errors"
)

func TestAllocateContainer(t *testing.T) {
	r := newRoute(t)

	child, err := r.AllocateContainer(12)
	if err != nil {
		t.Fatalf("TestAllocateContainer: got err == %s, want err == nil", err)
	}
	if child.Schema().Name != "member" {
		t.Fatalf("TestAllocateContainer: child schema %q, want \"member\"", child.Schema().Name)
	}
	if err := child.SetUint64(1, 5); err != nil {
		t.Fatalf("TestAllocateContainer(populate child): got err == %s, want err == nil", err)
	}

	if _, err := r.AllocateContainer(1); !errors.Is(err, ErrNotAContainer) {
		t.Fatalf("TestAllocateContainer(non-container field): got err == %v, want ErrNotAContainer", err)
	}
	if _, err := r.AllocateContainer(99); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("TestAllocateContainer(unknown field): got err == %v, want ErrUnknownField", err)
	}
}

func TestAllocateContainerSubset(t *testing.T) {
	r := newRoute(t)

	// Restricted to the child's portID field only.
	child, err := r.AllocateContainer(12, 1)
	if err != nil {
		t.Fatalf("TestAllocateContainerSubset: got err == %s, want err == nil", err)
	}
	if err := child.SetUint64(1, 5); err != nil {
		t.Fatalf("TestAllocateContainerSubset(set in subset): got err == %s, want err == nil", err)
	}
	if err := child.SetBool(2, true); !errors.Is(err, ErrInactiveField) {
		t.Fatalf("TestAllocateContainerSubset(set outside subset): got err == %v, want ErrInactiveField", err)
	}

	// Subset ids must belong to the child schema.
	if _, err := r.AllocateContainer(12, 99); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("TestAllocateContainerSubset(bad subset id): got err == %v, want ErrUnknownField", err)
	}
}

func TestContainerOwnershipTransfer(t *testing.T) {
	r := newRoute(t)

	child, err := r.AllocateContainer(12)
	if err != nil {
		t.Fatalf("TestContainerOwnershipTransfer: allocating child: %s", err)
	}
	child.MustSetUint64(1, 5)

	if err := r.SetContainers(12, []*Record{child}); err != nil {
		t.Fatalf("TestContainerOwnershipTransfer(set): got err == %s, want err == nil", err)
	}

	// The moved child is now parent-owned: the caller's handle cannot
	// release it.
	if err := child.Release(); !errors.Is(err, ErrOwned) {
		t.Fatalf("TestContainerOwnershipTransfer(release moved child): got err == %v, want ErrOwned", err)
	}
	// Moving the same handle in again must be rejected as consumed.
	if err := r.SetContainers(12, []*Record{child}); !errors.Is(err, ErrReleased) {
		t.Fatalf("TestContainerOwnershipTransfer(double move): got err == %v, want ErrReleased", err)
	}

	got, err := r.GetContainers(12)
	if err != nil {
		t.Fatalf("TestContainerOwnershipTransfer(get): got err == %s, want err == nil", err)
	}
	if len(got) != 1 {
		t.Fatalf("TestContainerOwnershipTransfer(get): got %d children, want 1", len(got))
	}
	if v := got[0].MustGetUint64(1); v != 5 {
		t.Fatalf("TestContainerOwnershipTransfer(get): child portID got %d, want 5", v)
	}
	// Borrowed views are not separately releasable either.
	if err := got[0].Release(); !errors.Is(err, ErrOwned) {
		t.Fatalf("TestContainerOwnershipTransfer(release borrowed): got err == %v, want ErrOwned", err)
	}
}

func TestContainerReplaceReleasesOld(t *testing.T) {
	r := newRoute(t)

	first, _ := r.AllocateContainer(12)
	first.MustSetUint64(1, 1)
	if err := r.SetContainers(12, []*Record{first}); err != nil {
		t.Fatalf("TestContainerReplaceReleasesOld(first set): got err == %s, want err == nil", err)
	}

	second, _ := r.AllocateContainer(12)
	second.MustSetUint64(1, 2)
	if err := r.SetContainers(12, []*Record{second}); err != nil {
		t.Fatalf("TestContainerReplaceReleasesOld(second set): got err == %s, want err == nil", err)
	}

	// The replaced child was released with the old slot value.
	if _, err := first.GetUint64(1); !errors.Is(err, ErrReleased) {
		t.Fatalf("TestContainerReplaceReleasesOld(old child): got err == %v, want ErrReleased", err)
	}

	got, _ := r.GetContainers(12)
	if len(got) != 1 || got[0].MustGetUint64(1) != 2 {
		t.Fatalf("TestContainerReplaceReleasesOld: stored children wrong: %v", got)
	}
}

func TestContainerConsumedOnFailure(t *testing.T) {
	r := newRoute(t)

	child, _ := r.AllocateContainer(12)
	child.MustSetUint64(1, 5)

	// Field 1 is not a container; the set fails and the children are
	// consumed, not handed back.
	if err := r.SetContainers(1, []*Record{child}); !errors.Is(err, ErrNotAContainer) {
		t.Fatalf("TestContainerConsumedOnFailure(set): got err == %v, want ErrNotAContainer", err)
	}
	if _, err := child.GetUint64(1); !errors.Is(err, ErrReleased) {
		t.Fatalf("TestContainerConsumedOnFailure(child after failure): got err == %v, want ErrReleased", err)
	}
}

func TestContainerSchemaMismatch(t *testing.T) {
	r := newRoute(t)

	// A record of the parent's own schema is not a valid child.
	impostor := newRoute(t)
	if err := r.SetContainers(12, []*Record{impostor}); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("TestContainerSchemaMismatch(set): got err == %v, want ErrTypeMismatch", err)
	}
	// And it was consumed by the failed transfer.
	if _, err := impostor.GetUint64(1); !errors.Is(err, ErrReleased) {
		t.Fatalf("TestContainerSchemaMismatch(impostor after failure): got err == %v, want ErrReleased", err)
	}
}

func TestContainerRecursiveRelease(t *testing.T) {
	r := newRoute(t)

	a, _ := r.AllocateContainer(12)
	b, _ := r.AllocateContainer(12)
	a.MustSetUint64(1, 1)
	b.MustSetUint64(1, 2)
	if err := r.SetContainers(12, []*Record{a, b}); err != nil {
		t.Fatalf("TestContainerRecursiveRelease(set): got err == %s, want err == nil", err)
	}

	if err := r.Release(); err != nil {
		t.Fatalf("TestContainerRecursiveRelease(release parent): got err == %s, want err == nil", err)
	}
	if _, err := a.GetUint64(1); !errors.Is(err, ErrReleased) {
		t.Fatalf("TestContainerRecursiveRelease(child a): got err == %v, want ErrReleased", err)
	}
	if _, err := b.GetUint64(1); !errors.Is(err, ErrReleased) {
		t.Fatalf("TestContainerRecursiveRelease(child b): got err == %v, want ErrReleased", err)
	}
}
