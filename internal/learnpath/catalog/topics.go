package catalog

// The DSA roadmap: 8 topics in dependency order. Prerequisites are
// informational for the roadmap UI; the engine only uses id order.
var topics = []Topic{
	{ID: 1, Name: "Arrays & Strings", Description: "Foundation of DSA - contiguous memory, indexing, string manipulation", Order: 1, Prerequisites: []uint{}},
	{ID: 2, Name: "Linked Lists", Description: "Dynamic data structures with node-based storage", Order: 2, Prerequisites: []uint{1}},
	{ID: 3, Name: "Stacks & Queues", Description: "LIFO and FIFO data structures for ordered operations", Order: 3, Prerequisites: []uint{1, 2}},
	{ID: 4, Name: "Recursion & Backtracking", Description: "Problem-solving through self-referential functions", Order: 4, Prerequisites: []uint{3}},
	{ID: 5, Name: "Trees & BST", Description: "Hierarchical data structures with parent-child relationships", Order: 5, Prerequisites: []uint{4}},
	{ID: 6, Name: "Graphs", Description: "Networks of nodes and edges for complex relationships", Order: 6, Prerequisites: []uint{5}},
	{ID: 7, Name: "Sorting Algorithms", Description: "Efficient ordering of data using various strategies", Order: 7, Prerequisites: []uint{4}},
	{ID: 8, Name: "Dynamic Programming", Description: "Optimization through overlapping subproblems", Order: 8, Prerequisites: []uint{4, 7}},
}

var subtopicsByTopic = map[uint][]Subtopic{
	1: {
		{ID: 1, Name: "Array Basics", Description: "Declaration, initialization, indexing", VideoURL: "https://www.youtube.com/watch?v=37E9ckMDdTk"},
		{ID: 2, Name: "Two Pointers", Description: "Technique for sorted array problems", VideoURL: "https://www.youtube.com/watch?v=-gjxk6MJbTE"},
		{ID: 3, Name: "Sliding Window", Description: "Fixed and variable size window problems", VideoURL: "https://www.youtube.com/watch?v=9kdHxplyl5I"},
		{ID: 4, Name: "Prefix Sum", Description: "Cumulative sum for range queries", VideoURL: "https://www.youtube.com/watch?v=xvNwoz-ufXA"},
		{ID: 5, Name: "Kadane's Algorithm", Description: "Maximum subarray sum", VideoURL: "https://www.youtube.com/watch?v=AHZpyENo7k4"},
		{ID: 6, Name: "String Manipulation", Description: "Substrings, palindromes, anagrams", VideoURL: "https://www.youtube.com/watch?v=428f84tQdQM"},
		{ID: 7, Name: "Hashing in Arrays", Description: "Using hashmaps for O(1) lookups", VideoURL: "https://www.youtube.com/watch?v=KEs5UyBJ39g"},
	},
	2: {
		{ID: 8, Name: "Singly Linked List", Description: "Basic node and next pointer", VideoURL: "https://www.youtube.com/watch?v=Nq7OkCHCp-A"},
		{ID: 9, Name: "Doubly Linked List", Description: "Nodes with prev and next pointers", VideoURL: "https://www.youtube.com/watch?v=0eMzhap7Qxw"},
		{ID: 10, Name: "Cycle Detection", Description: "Floyd's Tortoise and Hare algorithm", VideoURL: "https://www.youtube.com/watch?v=wiOo4DC5GGA"},
		{ID: 11, Name: "List Reversal", Description: "Iterative and recursive reversal", VideoURL: "https://www.youtube.com/watch?v=D2vI2DNJGd8"},
		{ID: 12, Name: "Fast & Slow Pointers", Description: "Finding middle, detecting cycles", VideoURL: "https://www.youtube.com/watch?v=7L70TuPNUf8"},
		{ID: 13, Name: "Merge Lists", Description: "Merging sorted linked lists", VideoURL: "https://www.youtube.com/watch?v=Xb4slcp1U38"},
	},
	3: {
		{ID: 14, Name: "Stack Basics", Description: "Push, pop, peek operations", VideoURL: "https://www.youtube.com/watch?v=BYhSys57LM0"},
		{ID: 15, Name: "Monotonic Stack", Description: "Next greater/smaller element", VideoURL: "https://www.youtube.com/watch?v=Dq_ObZwTY_Q"},
		{ID: 16, Name: "Queue Basics", Description: "Enqueue, dequeue operations", VideoURL: "https://www.youtube.com/watch?v=M6GnoUDpqEE"},
		{ID: 17, Name: "Deque", Description: "Double-ended queue operations", VideoURL: "https://www.youtube.com/watch?v=pqg0SOPryJ4"},
		{ID: 18, Name: "Priority Queue Intro", Description: "Heap-based priority operations", VideoURL: "https://www.youtube.com/watch?v=wptebq0r2IN"},
		{ID: 19, Name: "Stack Applications", Description: "Balanced parentheses, expression evaluation", VideoURL: "https://www.youtube.com/watch?v=wkDfsKijrZ8"},
	},
	4: {
		{ID: 20, Name: "Recursion Basics", Description: "Base case, recursive case", VideoURL: "https://www.youtube.com/watch?v=yVdKa8dnKiE"},
		{ID: 21, Name: "Recursion Tree", Description: "Visualizing recursive calls", VideoURL: "https://www.youtube.com/watch?v=5dP-bBVS1wU"},
		{ID: 22, Name: "Backtracking", Description: "Explore and undo approach", VideoURL: "https://www.youtube.com/watch?v=Zq4upTEaQyM"},
		{ID: 23, Name: "Subsets & Permutations", Description: "Generating all combinations", VideoURL: "https://www.youtube.com/watch?v=rYkfBRtMJr8"},
		{ID: 24, Name: "N-Queens Problem", Description: "Classic backtracking example", VideoURL: "https://www.youtube.com/watch?v=i05Ju7AftcM"},
		{ID: 25, Name: "Sudoku Solver", Description: "Constraint satisfaction", VideoURL: "https://www.youtube.com/watch?v=F_0rF6-mlF8"},
	},
	5: {
		{ID: 26, Name: "Binary Tree Basics", Description: "Nodes with left and right children", VideoURL: "https://www.youtube.com/watch?v=ctCqH0K3h8U"},
		{ID: 27, Name: "Tree Traversals", Description: "Inorder, preorder, postorder, level-order", VideoURL: "https://www.youtube.com/watch?v=jmy0LaGET1I"},
		{ID: 28, Name: "BST Operations", Description: "Insert, search, delete in BST", VideoURL: "https://www.youtube.com/watch?v=KcNt6v_56cc"},
		{ID: 29, Name: "Height & Depth", Description: "Calculating tree dimensions", VideoURL: "https://www.youtube.com/watch?v=eD3tmO66aBA"},
		{ID: 30, Name: "Lowest Common Ancestor", Description: "Finding LCA in trees", VideoURL: "https://www.youtube.com/watch?v=_-QHfMDde90"},
		{ID: 31, Name: "Tree Construction", Description: "Build tree from traversals", VideoURL: "https://www.youtube.com/watch?v=9GMECGQgWrQ"},
	},
	6: {
		{ID: 32, Name: "Graph Representation", Description: "Adjacency list and matrix", VideoURL: "https://www.youtube.com/watch?v=M3_pLsDdeuU"},
		{ID: 33, Name: "BFS", Description: "Breadth-first search traversal", VideoURL: "https://www.youtube.com/watch?v=-tgVpUgsQ5k"},
		{ID: 34, Name: "DFS", Description: "Depth-first search traversal", VideoURL: "https://www.youtube.com/watch?v=QZF1uGJo1ww"},
		{ID: 35, Name: "Connected Components", Description: "Finding connected parts", VideoURL: "https://www.youtube.com/watch?v=lea-Wl_uWXY"},
		{ID: 36, Name: "Topological Sort", Description: "Ordering DAG nodes", VideoURL: "https://www.youtube.com/watch?v=5lZ0iJMrUMk"},
		{ID: 37, Name: "Cycle Detection in Graphs", Description: "Detecting cycles using DFS", VideoURL: "https://www.youtube.com/watch?v=zQ3zbubqQLY"},
		{ID: 38, Name: "Shortest Path Basics", Description: "BFS for unweighted graphs", VideoURL: "https://www.youtube.com/watch?v=C4DIzPDp4ag"},
	},
	7: {
		{ID: 39, Name: "Bubble & Selection Sort", Description: "Simple O(n²) algorithms", VideoURL: "https://www.youtube.com/watch?v=HGk_8y2OqKc"},
		{ID: 40, Name: "Insertion Sort", Description: "Build sorted array one element at a time", VideoURL: "https://www.youtube.com/watch?v=wXSndz0_qSM"},
		{ID: 41, Name: "Merge Sort", Description: "Divide and conquer, O(n log n)", VideoURL: "https://www.youtube.com/watch?v=ogjf7ORKfd8"},
		{ID: 42, Name: "Quick Sort", Description: "Partition-based sorting", VideoURL: "https://www.youtube.com/watch?v=WIrA4YexLRQ"},
		{ID: 43, Name: "Counting Sort", Description: "Non-comparison based sorting", VideoURL: "https://www.youtube.com/watch?v=pEJiGC-ObQE"},
		{ID: 44, Name: "Heap Sort", Description: "Using heap data structure", VideoURL: "https://www.youtube.com/watch?v=2DmK_H7IdTo"},
	},
	8: {
		{ID: 45, Name: "DP Introduction", Description: "Memoization vs tabulation", VideoURL: "https://www.youtube.com/watch?v=tyB0ztf0DNY"},
		{ID: 46, Name: "1D DP", Description: "Fibonacci, climbing stairs", VideoURL: "https://www.youtube.com/watch?v=MnJXTVqHPrI"},
		{ID: 47, Name: "2D DP", Description: "Grid problems, LCS", VideoURL: "https://www.youtube.com/watch?v=M5-Ew8tXUCk"},
		{ID: 48, Name: "Longest Common Subsequence", Description: "Classic 2D DP problem", VideoURL: "https://www.youtube.com/watch?v=NPZn9jBrX8U"},
		{ID: 49, Name: "Longest Increasing Subsequence", Description: "1D DP with binary search optimization", VideoURL: "https://www.youtube.com/watch?v=ekcwMsSIzYo"},
		{ID: 50, Name: "Knapsack Problems", Description: "0/1 and unbounded knapsack", VideoURL: "https://www.youtube.com/watch?v=GqOmJHQZivw"},
		{ID: 51, Name: "DP on Strings", Description: "Edit distance, palindromic substrings", VideoURL: "https://www.youtube.com/watch?v=XYi2-LPrwm4"},
	},
}

type topicVideo struct {
	Name  string
	Video Video
}

// Curated topic-level videos for the worst-mastery video
// recommendation. Ordered: partial-match resolution walks this list.
var topicVideos = []topicVideo{
	{"Arrays", Video{Title: "Arrays Interview Patterns", URL: "https://www.youtube.com/watch?v=RBSGKlAvoiM"}},
	{"Arrays & Strings", Video{Title: "Arrays Interview Patterns", URL: "https://www.youtube.com/watch?v=RBSGKlAvoiM"}},
	{"Linked Lists", Video{Title: "Linked List Deep Dive", URL: "https://www.youtube.com/watch?v=njTh_OwMljA"}},
	{"Stacks & Queues", Video{Title: "Stacks & Queues Explained", URL: "https://www.youtube.com/watch?v=RBSGKlAvoiM"}},
	{"Recursion & Backtracking", Video{Title: "Recursion Mastery", URL: "https://www.youtube.com/watch?v=M2uO2n5H69U"}},
	{"Trees & BST", Video{Title: "Tree Traversals Explained", URL: "https://www.youtube.com/watch?v=fAAZixBzIAI"}},
	{"Graphs", Video{Title: "Graph Algorithms Crash Course", URL: "https://www.youtube.com/watch?v=tWVWeAqZ0WU"}},
	{"Sorting Algorithms", Video{Title: "All Sorting Algorithms Visualized", URL: "https://www.youtube.com/watch?v=kgBjXUE_Nwc"}},
	{"Dynamic Programming", Video{Title: "DP for Beginners", URL: "https://www.youtube.com/watch?v=oBt53YbR9Kk"}},
}
