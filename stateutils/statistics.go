package stateutils

// Statistics summarizes the pending uses collected at one scheduling point
type Statistics struct {
	ResourceCount int
	UseCount      int
	ReadCount     int
	WriteCount    int
	MergeCount    int
}

func (s *Statistics) Clear() {
	s.ResourceCount = 0
	s.UseCount = 0
	s.ReadCount = 0
	s.WriteCount = 0
	s.MergeCount = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.ResourceCount += other.ResourceCount
	s.UseCount += other.UseCount
	s.ReadCount += other.ReadCount
	s.WriteCount += other.WriteCount
	s.MergeCount += other.MergeCount
}

// AddUse records a single use folded into a resource range. merges is the number of additional
// uses that were merged into it.
func (s *Statistics) AddUse(write bool, merges int) {
	s.UseCount++
	s.MergeCount += merges

	if write {
		s.WriteCount++
	} else {
		s.ReadCount++
	}
}
