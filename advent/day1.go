package main

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

func init() {
	registerDay(1, parseDay1, day1a, day1b)
}

const expenseTarget = 2020

var errNoSolution = errors.New("no solution")

func parseDay1(input string) ([]int64, error) {
	var nums []int64
	scanner := bufio.NewScanner(strings.NewReader(input))
	for line := 1; scanner.Scan(); line++ {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s", line, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("line %d: negative entry %d", line, n)
		}
		nums = append(nums, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nums, nil
}

func day1a(nums []int64) (int64, error) {
	// complements holds 2020-k for every k seen so far.
	complements := make(map[int64]struct{})
	for _, k := range nums {
		if _, ok := complements[k]; ok {
			return k * (expenseTarget - k), nil
		}
		complements[expenseTarget-k] = struct{}{}
	}
	return 0, errNoSolution
}

func day1b(nums []int64) (int64, error) {
	for i := 0; i < len(nums); i++ {
		for j := i + 1; j < len(nums); j++ {
			for k := j + 1; k < len(nums); k++ {
				if nums[i]+nums[j]+nums[k] == expenseTarget {
					return nums[i] * nums[j] * nums[k], nil
				}
			}
		}
	}
	return 0, errNoSolution
}
