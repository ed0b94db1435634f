// Package mbarrier provides memory barriers modeled on the Linux kernel's
// rmb/wmb/mb family.
//
// Each function compiles down to a call into one architecture backend,
// picked at build time from GOARCH:
//
//	x86 (386, amd64)   Rmb: compiler only   Wmb: SFENCE      Mb: MFENCE
//	arm64              Rmb: DSB LD          Wmb: DSB ST      Mb: DSB SY
//	arm (GOARM=7)      Rmb: DMB LD          Wmb: DMB ST      Mb: DMB SY
//	arm (GOARM<7)      CP15 c7,c10 barrier operations
//	riscv64            Rmb: FENCE R,R       Wmb: FENCE W,W   Mb: FENCE RW,RW
//	others             sync/atomic acquire, release and full ordering
//
// Build tags:
//
//	mbarrier_up      single-processor target; the Smp* barriers only
//	                 constrain the compiler
//	mbarrier_noasm   use the sync/atomic backend on every GOARCH
//
// The canonical use is message passing between two cores:
//
//	// producer              // consumer
//	data = v                 for atomic.LoadUint32(&flag) == 0 {
//	mbarrier.SmpWmb()        }
//	atomic.StoreUint32(      mbarrier.SmpRmb()
//	    &flag, 1)            use(data)
//
// Placing barriers correctly is up to the caller. Under the Go memory model
// a plain write racing with a plain read is still a data race; keep the
// signaling variable on sync/atomic and use these barriers for the ordering
// of the surrounding accesses that the hardware or a device observes.
package mbarrier
