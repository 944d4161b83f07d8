package stream

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/panjf2000/ants/v2"

	"github.com/kabu1204/go-optional/types"
)

// source <- Filter <- Map <- ToSlice

type stageOption func(*stage)
type wrapperType func(next *stage) []stageOption

// source feeds untyped elements into the head of a stage chain.
// next follows the Iterator contract (element, true until exhaustion);
// size may be -1 when the sequence length is unknown.
type source struct {
	next func() (any, bool)
	size func() int
}

// stage is one link of a push-based pipeline. Elements flow through the
// chain as `any`: Go method sets cannot introduce type parameters, so the
// typed surface lives in the Stream facade and asserts at the boundary.
type stage struct {
	src       *source
	prev      *stage
	wrapper   wrapperType
	consumer  func(any)
	settler   func(size int64, opts ...stageOption)
	cleaner   func()
	canceller func() bool
	parallel  int
	name      string
}

func (s *stage) terminate() {
	head := s.setFunctor()
	src := s.src
	head.settler(int64(maxInt(src.size(), 0)))
	for v, ok := src.next(); ok && !head.canceller(); v, ok = src.next() {
		head.consumeOne(v)
	}
	head.cleaner()
}

func (s *stage) consumeOne(e any) {
	s.consumer(e)
}

func (s *stage) unwrap(next *stage) {
	opts := s.wrapper(next)
	for _, o := range opts {
		o(s)
	}
}

func wrapConsumer(c func(any)) stageOption                  { return func(s *stage) { s.consumer = c } }
func wrapSettler(c func(int64, ...stageOption)) stageOption { return func(s *stage) { s.settler = c } }
func wrapCleaner(c func()) stageOption                      { return func(s *stage) { s.cleaner = c } }
func wrapCanceller(c func() bool) stageOption               { return func(s *stage) { s.canceller = c } }

// setFunctor assembles the chain back-to-front: every stage derives its
// consumer/settler/cleaner/canceller from its wrapper applied to the stage
// after it, starting from a dummy tail. Returns the head.
func (s *stage) setFunctor() *stage {
	s.unwrap(&stage{
		src:       s.src,
		prev:      s,
		consumer:  func(_ any) {},
		settler:   func(_ int64, _ ...stageOption) {},
		cleaner:   func() {},
		canceller: func() bool { return false },
		parallel:  0,
		name:      "DummyTail",
	})
	p := s
	for ; p.prev != nil; p = p.prev {
		p.prev.unwrap(p)
	}
	return p
}

func newStage(prev *stage, wrapper wrapperType, name string) *stage {
	return &stage{
		src:      prev.src,
		prev:     prev,
		wrapper:  wrapper,
		parallel: 0,
		name:     name,
	}
}

// stateless

func (s *stage) filter(p func(any) bool) *stage {
	// s is prev
	wrapper := func(next *stage) []stageOption {
		consumer := func(e any) {
			if p(e) {
				next.consumeOne(e)
			}
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	return newStage(s, wrapper, "Filter")
}

func (s *stage) mapOp(f func(any) any) *stage {
	wrapper := func(next *stage) []stageOption {
		consumer := func(e any) {
			next.consumeOne(f(e))
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	return newStage(s, wrapper, "Map")
}

func (s *stage) mapField(fieldPath string) *stage {
	wrapper := func(next *stage) []stageOption {
		var indices []int
		var ok bool
		var t any
		consumer := func(e any) {
			if indices != nil {
				next.consumeOne(reflect.Indirect(reflect.ValueOf(e)).FieldByIndex(indices).Interface())
			} else if t, indices, ok = types.FieldPath2Index(e, fieldPath); ok {
				next.consumeOne(t)
			} else {
				panic("Field path is INCORRECT.")
			}
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	return newStage(s, wrapper, "MapField")
}

func (s *stage) flatMap(f func(any) *stage) *stage {
	wrapper := func(next *stage) []stageOption {
		consumer := func(e any) {
			f(e).forEach(next.consumeOne)
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	return newStage(s, wrapper, "FlatMap")
}

func (s *stage) peek(f func(any)) *stage {
	wrapper := func(next *stage) []stageOption {
		consumer := func(e any) {
			f(e)
			next.consumeOne(e)
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	return newStage(s, wrapper, "Peek")
}

func (s *stage) parallelN(n int) *stage {
	wrapper := func(next *stage) []stageOption {
		var wg sync.WaitGroup
		var pool *ants.Pool
		settler := func(sz int64, opts ...stageOption) {
			if n >= 0 {
				toggleParallel := func(this *stage) { this.parallel = n }
				opts = append(opts, toggleParallel)
			}
			for _, o := range opts {
				o(next.prev)
			}
			pool, _ = ants.NewPool(maxInt(n, 1))
			next.settler(sz, opts...)
		}
		consumer := func(e any) {
			wg.Add(1)
			f := func() {
				next.consumeOne(e)
				wg.Done()
			}
			_ = pool.Submit(f)
		}
		cleaner := func() {
			wg.Wait()
			pool.Release()
			pool = nil
			next.cleaner()
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCleaner(cleaner))
	}
	return newStage(s, wrapper, "Parallel")
}

// stateful

func (s *stage) distinct(hash func(any) int) *stage {
	wrapper := func(next *stage) []stageOption {
		var set *hashmap.HashMap
		settler := func(sz int64, opts ...stageOption) {
			for _, o := range opts {
				o(next.prev)
			}
			set = &hashmap.HashMap{}
			next.settler(sz, opts...)
		}
		consumer := func(e any) {
			if _, exist := set.GetOrInsert(hash(e), struct{}{}); !exist {
				next.consumeOne(e)
			}
		}
		cleaner := func() {
			set = nil
			next.cleaner()
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCleaner(cleaner))
	}
	return newStage(s, wrapper, "Distinct")
}

func (s *stage) sorted(cmp func(e1, e2 any) int, keepParallel bool) *stage {
	wrapper := func(next *stage) []stageOption {
		var buffer chan any
		var drained chan struct{}
		var mp *treemap.Map
		this := next.prev
		settler := func(capacity int64, opts ...stageOption) {
			for _, o := range opts {
				o(this)
			}
			mp = treemap.NewWith(utils.Comparator(cmp))
			if this.parallel > 0 {
				buffer = make(chan any, maxInt64(capacity, 1))
				drained = make(chan struct{})
				writer := func() {
					for e := range buffer {
						if c, ok := mp.Get(e); ok {
							mp.Put(e, c.(int)+1)
						} else {
							mp.Put(e, 1)
						}
					}
					close(drained)
				}
				go writer()
			}
			next.settler(capacity, opts...)
		}
		consumer := func(e any) {
			if this.parallel > 0 {
				buffer <- e
			} else {
				if c, ok := mp.Get(e); ok {
					mp.Put(e, c.(int)+1)
				} else {
					mp.Put(e, 1)
				}
			}
		}
		cleaner := func() {
			opts := make([]stageOption, 0)
			if !keepParallel || this.parallel == 0 {
				opts = append(opts, func(_this *stage) { _this.parallel = 0 })
			}
			if this.parallel > 0 {
				close(buffer)
				<-drained
			}
			next.settler(int64(mp.Size()), opts...)
			it := mp.Iterator()
			for it.Next() {
				e, c := it.Key(), it.Value().(int)
				for ; c > 0; c-- {
					next.consumeOne(e)
				}
			}
			mp.Clear()
			mp = nil
			next.cleaner()
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCleaner(cleaner))
	}
	if keepParallel {
		return newStage(s, wrapper, "Sorted").parallelN(-1)
	}
	return newStage(s, wrapper, "Sorted")
}

func (s *stage) limit(n int64) *stage {
	wrapper := func(next *stage) []stageOption {
		var cnt *int64
		settler := func(sz int64, opts ...stageOption) {
			for _, o := range opts {
				o(next.prev)
			}
			cnt = new(int64)
			next.settler(sz, opts...)
		}
		consumer := func(e any) {
			for old := atomic.LoadInt64(cnt); old < n; old = atomic.LoadInt64(cnt) {
				if atomic.CompareAndSwapInt64(cnt, old, old+1) {
					next.consumeOne(e)
					break
				}
			}
		}
		cleaner := func() {
			atomic.StoreInt64(cnt, n)
			next.cleaner()
		}
		canceller := func() bool {
			return atomic.LoadInt64(cnt) == n || next.canceller()
		}
		return append(defaultWrapper(next), wrapSettler(settler),
			wrapConsumer(consumer), wrapCleaner(cleaner), wrapCanceller(canceller))
	}
	return newStage(s, wrapper, "Limit")
}

func (s *stage) skip(n int64) *stage {
	wrapper := func(next *stage) []stageOption {
		var cnt *int64
		settler := func(sz int64, opts ...stageOption) {
			for _, o := range opts {
				o(next.prev)
			}
			cnt = new(int64)
			next.settler(sz, opts...)
		}
		consumer := func(e any) {
			for old := atomic.LoadInt64(cnt); old < n; old = atomic.LoadInt64(cnt) {
				if atomic.CompareAndSwapInt64(cnt, old, old+1) {
					return
				}
			}
			next.consumeOne(e)
		}
		cleaner := func() {
			atomic.StoreInt64(cnt, n)
			next.cleaner()
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCleaner(cleaner))
	}
	return newStage(s, wrapper, "Skip")
}

// termination

func (s *stage) toSlice() []any {
	var slice []any
	wrapper := func(next *stage) []stageOption {
		settler := func(sz int64, opts ...stageOption) {
			for _, o := range opts {
				o(next.prev)
			}
			slice = make([]any, 0, sz)
			next.settler(sz, opts...)
		}
		consumer := func(e any) {
			slice = append(slice, e)
		}
		return append(defaultWrapper(next), wrapConsumer(consumer), wrapSettler(settler))
	}
	newStage(s, wrapper, "ToSlice").terminate()
	return slice
}

func (s *stage) forEach(f func(any)) {
	wrapper := func(next *stage) []stageOption {
		consumer := func(e any) { f(e) }
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newStage(s, wrapper, "ForEach").terminate()
}

func (s *stage) allMatch(p func(any) bool) bool {
	var flag bool
	wrapper := func(next *stage) []stageOption {
		settler := func(sz int64, opts ...stageOption) {
			for _, o := range opts {
				o(next.prev)
			}
			flag = true
			next.settler(sz, opts...)
		}
		consumer := func(e any) {
			if !p(e) {
				flag = false
			}
		}
		canceller := func() bool {
			return !flag
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCanceller(canceller))
	}
	newStage(s, wrapper, "AllMatch").terminate()
	return flag
}

func (s *stage) noneMatch(p func(any) bool) bool {
	return s.allMatch(func(e any) bool { return !p(e) })
}

func (s *stage) anyMatch(p func(any) bool) bool {
	var flag bool
	wrapper := func(next *stage) []stageOption {
		settler := func(sz int64, opts ...stageOption) {
			for _, o := range opts {
				o(next.prev)
			}
			flag = false
			next.settler(sz, opts...)
		}
		consumer := func(e any) {
			if p(e) {
				flag = true
			}
		}
		canceller := func() bool {
			return flag
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCanceller(canceller))
	}
	newStage(s, wrapper, "AnyMatch").terminate()
	return flag
}

// reduce folds the elements with acc, reporting false on an empty pipeline.
func (s *stage) reduce(acc func(e1, e2 any) any) (any, bool) {
	var result any
	none := true
	wrapper := func(next *stage) []stageOption {
		consumer := func(e any) {
			if none {
				result = e
				none = false
			} else {
				result = acc(result, e)
			}
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newStage(s, wrapper, "Reduce").terminate()
	return result, !none
}

func (s *stage) reduceFrom(initValue any, acc func(e1, e2 any) any) any {
	result := initValue
	wrapper := func(next *stage) []stageOption {
		consumer := func(e any) {
			result = acc(result, e)
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newStage(s, wrapper, "ReduceFrom").terminate()
	return result
}

func (s *stage) findFirst() (any, bool) {
	none := true
	var result any
	wrapper := func(next *stage) []stageOption {
		consumer := func(e any) {
			if none {
				result = e
				none = false
			}
		}
		canceller := func() bool {
			return !none
		}
		return append(defaultWrapper(next), wrapConsumer(consumer), wrapCanceller(canceller))
	}
	newStage(s, wrapper, "FindFirst").terminate()
	return result, !none
}

func (s *stage) findFirstMatch(p func(any) bool) (any, bool) {
	none := true
	var result any
	wrapper := func(next *stage) []stageOption {
		consumer := func(e any) {
			if none && p(e) {
				result = e
				none = false
			}
		}
		canceller := func() bool {
			return !none
		}
		return append(defaultWrapper(next), wrapConsumer(consumer), wrapCanceller(canceller))
	}
	newStage(s, wrapper, "FindFirstMatch").terminate()
	return result, !none
}

func (s *stage) count() int64 {
	var cnt int64 = 0
	wrapper := func(next *stage) []stageOption {
		consumer := func(_ any) { cnt++ }
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newStage(s, wrapper, "Count").terminate()
	return cnt
}
