package dispatch

import "time"

// Fixed-arity collections hold up to [MaxArity] targets of distinct concrete
// types. Dispatch is static: each member is called through its own type, and
// [Results] for these collections never allocate.

// Targets1 is a [Collection] of a single target.
type Targets1[A Target] struct {
	T1 A
}

// NewTargets1 returns a collection of the given target.
func NewTargets1[A Target](t1 A) Targets1[A] {
	return Targets1[A]{t1}
}

// MaxLevel implements [Collection].
func (t Targets1[A]) MaxLevel() LevelFilter {
	return maxFilter(t.T1.Level())
}

// Len implements [Collection].
func (t Targets1[A]) Len() int { return 1 }

// Write implements [Collection].
func (t Targets1[A]) Write(elapsed time.Duration, r Record) Results {
	res := makeResults(1)
	res.set(0, writeTo(t.T1, elapsed, r))

	return res
}

// Flush implements [Collection].
func (t Targets1[A]) Flush() Results {
	res := makeResults(1)
	res.set(0, t.T1.Flush())

	return res
}

// Targets2 is a [Collection] of two targets.
type Targets2[A, B Target] struct {
	T1 A
	T2 B
}

// NewTargets2 returns a collection of the given targets in order.
func NewTargets2[A, B Target](t1 A, t2 B) Targets2[A, B] {
	return Targets2[A, B]{t1, t2}
}

// MaxLevel implements [Collection].
func (t Targets2[A, B]) MaxLevel() LevelFilter {
	return maxFilter(t.T1.Level(), t.T2.Level())
}

// Len implements [Collection].
func (t Targets2[A, B]) Len() int { return 2 }

// Write implements [Collection].
func (t Targets2[A, B]) Write(elapsed time.Duration, r Record) Results {
	res := makeResults(2)
	res.set(0, writeTo(t.T1, elapsed, r))
	res.set(1, writeTo(t.T2, elapsed, r))

	return res
}

// Flush implements [Collection].
func (t Targets2[A, B]) Flush() Results {
	res := makeResults(2)
	res.set(0, t.T1.Flush())
	res.set(1, t.T2.Flush())

	return res
}

// Targets3 is a [Collection] of three targets.
type Targets3[A, B, C Target] struct {
	T1 A
	T2 B
	T3 C
}

// NewTargets3 returns a collection of the given targets in order.
func NewTargets3[A, B, C Target](t1 A, t2 B, t3 C) Targets3[A, B, C] {
	return Targets3[A, B, C]{t1, t2, t3}
}

// MaxLevel implements [Collection].
func (t Targets3[A, B, C]) MaxLevel() LevelFilter {
	return maxFilter(t.T1.Level(), t.T2.Level(), t.T3.Level())
}

// Len implements [Collection].
func (t Targets3[A, B, C]) Len() int { return 3 }

// Write implements [Collection].
func (t Targets3[A, B, C]) Write(elapsed time.Duration, r Record) Results {
	res := makeResults(3)
	res.set(0, writeTo(t.T1, elapsed, r))
	res.set(1, writeTo(t.T2, elapsed, r))
	res.set(2, writeTo(t.T3, elapsed, r))

	return res
}

// Flush implements [Collection].
func (t Targets3[A, B, C]) Flush() Results {
	res := makeResults(3)
	res.set(0, t.T1.Flush())
	res.set(1, t.T2.Flush())
	res.set(2, t.T3.Flush())

	return res
}

// Targets4 is a [Collection] of four targets.
type Targets4[A, B, C, D Target] struct {
	T1 A
	T2 B
	T3 C
	T4 D
}

// NewTargets4 returns a collection of the given targets in order.
func NewTargets4[A, B, C, D Target](t1 A, t2 B, t3 C, t4 D) Targets4[A, B, C, D] {
	return Targets4[A, B, C, D]{t1, t2, t3, t4}
}

// MaxLevel implements [Collection].
func (t Targets4[A, B, C, D]) MaxLevel() LevelFilter {
	return maxFilter(t.T1.Level(), t.T2.Level(), t.T3.Level(), t.T4.Level())
}

// Len implements [Collection].
func (t Targets4[A, B, C, D]) Len() int { return 4 }

// Write implements [Collection].
func (t Targets4[A, B, C, D]) Write(elapsed time.Duration, r Record) Results {
	res := makeResults(4)
	res.set(0, writeTo(t.T1, elapsed, r))
	res.set(1, writeTo(t.T2, elapsed, r))
	res.set(2, writeTo(t.T3, elapsed, r))
	res.set(3, writeTo(t.T4, elapsed, r))

	return res
}

// Flush implements [Collection].
func (t Targets4[A, B, C, D]) Flush() Results {
	res := makeResults(4)
	res.set(0, t.T1.Flush())
	res.set(1, t.T2.Flush())
	res.set(2, t.T3.Flush())
	res.set(3, t.T4.Flush())

	return res
}

// Targets5 is a [Collection] of five targets.
type Targets5[A, B, C, D, E Target] struct {
	T1 A
	T2 B
	T3 C
	T4 D
	T5 E
}

// NewTargets5 returns a collection of the given targets in order.
func NewTargets5[A, B, C, D, E Target](
	t1 A,
	t2 B,
	t3 C,
	t4 D,
	t5 E,
) Targets5[A, B, C, D, E] {
	return Targets5[A, B, C, D, E]{t1, t2, t3, t4, t5}
}

// MaxLevel implements [Collection].
func (t Targets5[A, B, C, D, E]) MaxLevel() LevelFilter {
	return maxFilter(t.T1.Level(), t.T2.Level(), t.T3.Level(), t.T4.Level(), t.T5.Level())
}

// Len implements [Collection].
func (t Targets5[A, B, C, D, E]) Len() int { return 5 }

// Write implements [Collection].
func (t Targets5[A, B, C, D, E]) Write(elapsed time.Duration, r Record) Results {
	res := makeResults(5)
	res.set(0, writeTo(t.T1, elapsed, r))
	res.set(1, writeTo(t.T2, elapsed, r))
	res.set(2, writeTo(t.T3, elapsed, r))
	res.set(3, writeTo(t.T4, elapsed, r))
	res.set(4, writeTo(t.T5, elapsed, r))

	return res
}

// Flush implements [Collection].
func (t Targets5[A, B, C, D, E]) Flush() Results {
	res := makeResults(5)
	res.set(0, t.T1.Flush())
	res.set(1, t.T2.Flush())
	res.set(2, t.T3.Flush())
	res.set(3, t.T4.Flush())
	res.set(4, t.T5.Flush())

	return res
}

// Targets6 is a [Collection] of six targets.
type Targets6[A, B, C, D, E, F Target] struct {
	T1 A
	T2 B
	T3 C
	T4 D
	T5 E
	T6 F
}

// NewTargets6 returns a collection of the given targets in order.
func NewTargets6[A, B, C, D, E, F Target](
	t1 A,
	t2 B,
	t3 C,
	t4 D,
	t5 E,
	t6 F,
) Targets6[A, B, C, D, E, F] {
	return Targets6[A, B, C, D, E, F]{t1, t2, t3, t4, t5, t6}
}

// MaxLevel implements [Collection].
func (t Targets6[A, B, C, D, E, F]) MaxLevel() LevelFilter {
	return maxFilter(t.T1.Level(), t.T2.Level(), t.T3.Level(), t.T4.Level(), t.T5.Level(), t.T6.Level())
}

// Len implements [Collection].
func (t Targets6[A, B, C, D, E, F]) Len() int { return 6 }

// Write implements [Collection].
func (t Targets6[A, B, C, D, E, F]) Write(elapsed time.Duration, r Record) Results {
	res := makeResults(6)
	res.set(0, writeTo(t.T1, elapsed, r))
	res.set(1, writeTo(t.T2, elapsed, r))
	res.set(2, writeTo(t.T3, elapsed, r))
	res.set(3, writeTo(t.T4, elapsed, r))
	res.set(4, writeTo(t.T5, elapsed, r))
	res.set(5, writeTo(t.T6, elapsed, r))

	return res
}

// Flush implements [Collection].
func (t Targets6[A, B, C, D, E, F]) Flush() Results {
	res := makeResults(6)
	res.set(0, t.T1.Flush())
	res.set(1, t.T2.Flush())
	res.set(2, t.T3.Flush())
	res.set(3, t.T4.Flush())
	res.set(4, t.T5.Flush())
	res.set(5, t.T6.Flush())

	return res
}

// Targets7 is a [Collection] of seven targets.
type Targets7[A, B, C, D, E, F, G Target] struct {
	T1 A
	T2 B
	T3 C
	T4 D
	T5 E
	T6 F
	T7 G
}

// NewTargets7 returns a collection of the given targets in order.
func NewTargets7[A, B, C, D, E, F, G Target](
	t1 A,
	t2 B,
	t3 C,
	t4 D,
	t5 E,
	t6 F,
	t7 G,
) Targets7[A, B, C, D, E, F, G] {
	return Targets7[A, B, C, D, E, F, G]{t1, t2, t3, t4, t5, t6, t7}
}

// MaxLevel implements [Collection].
func (t Targets7[A, B, C, D, E, F, G]) MaxLevel() LevelFilter {
	return maxFilter(
		t.T1.Level(),
		t.T2.Level(),
		t.T3.Level(),
		t.T4.Level(),
		t.T5.Level(),
		t.T6.Level(),
		t.T7.Level(),
	)
}

// Len implements [Collection].
func (t Targets7[A, B, C, D, E, F, G]) Len() int { return 7 }

// Write implements [Collection].
func (t Targets7[A, B, C, D, E, F, G]) Write(elapsed time.Duration, r Record) Results {
	res := makeResults(7)
	res.set(0, writeTo(t.T1, elapsed, r))
	res.set(1, writeTo(t.T2, elapsed, r))
	res.set(2, writeTo(t.T3, elapsed, r))
	res.set(3, writeTo(t.T4, elapsed, r))
	res.set(4, writeTo(t.T5, elapsed, r))
	res.set(5, writeTo(t.T6, elapsed, r))
	res.set(6, writeTo(t.T7, elapsed, r))

	return res
}

// Flush implements [Collection].
func (t Targets7[A, B, C, D, E, F, G]) Flush() Results {
	res := makeResults(7)
	res.set(0, t.T1.Flush())
	res.set(1, t.T2.Flush())
	res.set(2, t.T3.Flush())
	res.set(3, t.T4.Flush())
	res.set(4, t.T5.Flush())
	res.set(5, t.T6.Flush())
	res.set(6, t.T7.Flush())

	return res
}

// Targets8 is a [Collection] of eight targets.
type Targets8[A, B, C, D, E, F, G, H Target] struct {
	T1 A
	T2 B
	T3 C
	T4 D
	T5 E
	T6 F
	T7 G
	T8 H
}

// NewTargets8 returns a collection of the given targets in order.
func NewTargets8[A, B, C, D, E, F, G, H Target](
	t1 A,
	t2 B,
	t3 C,
	t4 D,
	t5 E,
	t6 F,
	t7 G,
	t8 H,
) Targets8[A, B, C, D, E, F, G, H] {
	return Targets8[A, B, C, D, E, F, G, H]{t1, t2, t3, t4, t5, t6, t7, t8}
}

// MaxLevel implements [Collection].
func (t Targets8[A, B, C, D, E, F, G, H]) MaxLevel() LevelFilter {
	return maxFilter(
		t.T1.Level(),
		t.T2.Level(),
		t.T3.Level(),
		t.T4.Level(),
		t.T5.Level(),
		t.T6.Level(),
		t.T7.Level(),
		t.T8.Level(),
	)
}

// Len implements [Collection].
func (t Targets8[A, B, C, D, E, F, G, H]) Len() int { return 8 }

// Write implements [Collection].
func (t Targets8[A, B, C, D, E, F, G, H]) Write(elapsed time.Duration, r Record) Results {
	res := makeResults(8)
	res.set(0, writeTo(t.T1, elapsed, r))
	res.set(1, writeTo(t.T2, elapsed, r))
	res.set(2, writeTo(t.T3, elapsed, r))
	res.set(3, writeTo(t.T4, elapsed, r))
	res.set(4, writeTo(t.T5, elapsed, r))
	res.set(5, writeTo(t.T6, elapsed, r))
	res.set(6, writeTo(t.T7, elapsed, r))
	res.set(7, writeTo(t.T8, elapsed, r))

	return res
}

// Flush implements [Collection].
func (t Targets8[A, B, C, D, E, F, G, H]) Flush() Results {
	res := makeResults(8)
	res.set(0, t.T1.Flush())
	res.set(1, t.T2.Flush())
	res.set(2, t.T3.Flush())
	res.set(3, t.T4.Flush())
	res.set(4, t.T5.Flush())
	res.set(5, t.T6.Flush())
	res.set(6, t.T7.Flush())
	res.set(7, t.T8.Flush())

	return res
}
